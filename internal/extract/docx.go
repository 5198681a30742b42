package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var xmlTags = regexp.MustCompile(`<[^>]+>`)

// docxText extracts the document body of a DOCX archive. A DOCX file is a
// zip containing word/document.xml; paragraph closers become newlines and
// the remaining XML tags are stripped. Failures are folded into the returned
// text, matching the PDF extractor's contract.
func docxText(data []byte) string {
	text, err := readDocx(data)
	if err != nil {
		return fmt.Sprintf("Error reading DOCX: %v", err)
	}
	return text
}

func readDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no word/document.xml in archive")
	}

	body := string(docXML)
	body = strings.ReplaceAll(body, "</w:p>", "\n")
	body = strings.ReplaceAll(body, "<w:tab/>", "\t")
	body = xmlTags.ReplaceAllString(body, " ")
	return collapseSpaces(body), nil
}

var spaceRuns = regexp.MustCompile(`[ \t]+`)

func collapseSpaces(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = spaceRuns.ReplaceAllString(s, " ")
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
