package validation

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/username/finboard/src/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func TestValidateCSVHeader(t *testing.T) {
	valid := []string{
		"category,name,price,date,notes",
		"Category,Name,Price,Date,Notes",
		`"Category","Name","Price","Date"`,
		" category , name , price , date ",
		"date,price,name,category",
	}
	for _, header := range valid {
		if err := ValidateCSVHeader(header); err != nil {
			t.Errorf("ValidateCSVHeader(%q) = %v, want nil", header, err)
		}
	}
}

func TestValidateCSVHeaderMissingColumns(t *testing.T) {
	err := ValidateCSVHeader("category,name,notes")
	if err == nil {
		t.Fatal("ValidateCSVHeader accepted a header missing price and date")
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want it to wrap ErrValidationFailed", err)
	}
	if !strings.Contains(err.Error(), "price") || !strings.Contains(err.Error(), "date") {
		t.Errorf("error %q does not name the missing columns", err)
	}
}

func TestValidateClientContentType(t *testing.T) {
	for _, ct := range []string{"text/csv", "application/csv", "text/plain", "TEXT/CSV"} {
		if err := ValidateClientContentType(ct); err != nil {
			t.Errorf("ValidateClientContentType(%q) = %v, want nil", ct, err)
		}
	}

	err := ValidateClientContentType("application/pdf")
	if err == nil {
		t.Fatal("ValidateClientContentType accepted application/pdf")
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want it to wrap ErrValidationFailed", err)
	}
}

func TestValidateFileContentByMagicBytes(t *testing.T) {
	csv := bytes.NewReader([]byte("category,name,price,date\nFood,Lunch,-50,2023-05-03\n"))
	detected, err := ValidateFileContentByMagicBytes(csv)
	if err != nil {
		t.Fatalf("ValidateFileContentByMagicBytes = %v, want nil", err)
	}
	if detected != "text/plain" {
		t.Errorf("detected type = %q, want text/plain", detected)
	}

	// The read pointer must be reset so the parser still sees row one.
	buf := make([]byte, 8)
	n, _ := csv.Read(buf)
	if string(buf[:n]) != "category" {
		t.Errorf("after validation read %q, want the stream rewound to the start", string(buf[:n]))
	}
}

func TestValidateFileContentRejectsBinary(t *testing.T) {
	pdf := bytes.NewReader([]byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"))
	_, err := ValidateFileContentByMagicBytes(pdf)
	if err == nil {
		t.Fatal("ValidateFileContentByMagicBytes accepted a PDF signature")
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want it to wrap ErrValidationFailed", err)
	}
}

func TestStripUnprintable(t *testing.T) {
	got := StripUnprintable("café latte\x00\x1b[31m")
	if strings.ContainsRune(got, 0) {
		t.Errorf("StripUnprintable left a NUL byte in %q", got)
	}
	if !strings.HasPrefix(got, "café latte") {
		t.Errorf("StripUnprintable = %q, want printable prefix kept", got)
	}
}
