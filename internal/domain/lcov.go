package domain

import (
	"strconv"
	"strings"

	m "golcov.dev/pkg/golcov/internal/model"
)

// FormatLcov renders reports as LCOV text, one record block per file.
func FormatLcov(reports []m.FileReport) string {
	var b strings.Builder

	for _, report := range reports {
		writeRecord(&b, report)
	}

	return b.String()
}

func writeRecord(b *strings.Builder, report m.FileReport) {
	b.WriteString("TN:\n")
	b.WriteString("SF:" + string(report.Filename) + "\n")

	for _, line := range report.Lines {
		b.WriteString("DA:" + strconv.Itoa(line.Line) + "," + strconv.Itoa(int(line.Hits)) + "\n")
	}

	b.WriteString("LF:" + strconv.Itoa(report.Found) + "\n")
	b.WriteString("LH:" + strconv.Itoa(report.Hit) + "\n")
	b.WriteString("end_of_record\n")
}
