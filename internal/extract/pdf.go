package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts the plain text of every page. Failures are folded into
// the returned text so analysis can proceed on whatever is available.
func pdfText(data []byte) string {
	text, err := readPDF(data)
	if err != nil {
		return fmt.Sprintf("Error reading PDF: %v", err)
	}
	return text
}

func readPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
