package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tieubaoca/reporto-be/types"
)

// buildPDF writes a minimal uncompressed PDF with one page per content
// stream, all using Helvetica as /F1.
func buildPDF(pageContents ...string) []byte {
	var objects []string
	kids := ""
	for i := range pageContents {
		kids += fmt.Sprintf("%d 0 R ", 4+i*2)
	}
	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(pageContents)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	)
	for i, content := range pageContents {
		contentObj := 5 + i*2
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentObj),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestPDFService_ExtractsPagesInOrder(t *testing.T) {
	data := buildPDF(
		"BT /F1 12 Tf 72 712 Td (Hemoglobin 13.5) Tj ET",
		"BT /F1 12 Tf 72 712 Td (Platelets 250) Tj ET",
	)

	text, err := NewPDFService().ExtractText(context.Background(), data)
	require.NoError(t, err)

	first := bytes.Index([]byte(text), []byte("Hemoglobin 13.5"))
	second := bytes.Index([]byte(text), []byte("Platelets 250"))
	require.NotEqual(t, -1, first, text)
	require.NotEqual(t, -1, second, text)
	assert.Less(t, first, second)
}

func TestPDFService_RejectsGarbage(t *testing.T) {
	_, err := NewPDFService().ExtractText(context.Background(), []byte("definitely not a pdf"))
	require.Error(t, err)
}

func TestDocumentService_WhitespaceOnlyPDFIsEmpty(t *testing.T) {
	svc := NewDocumentService(NewPDFService(), &stubExtractor{}, zaptest.NewLogger(t))
	data := buildPDF("BT /F1 12 Tf 72 712 Td (    ) Tj ET")

	_, err := svc.Extract(context.Background(), data, types.MediaTypePDF)
	require.True(t, errors.Is(err, ErrExtractionEmpty), "got %v", err)
}

func TestDocumentService_MalformedPDFIsExtractionError(t *testing.T) {
	svc := NewDocumentService(NewPDFService(), &stubExtractor{}, zaptest.NewLogger(t))

	_, err := svc.Extract(context.Background(), []byte("%PDF-1.4 truncated"), types.MediaTypePDF)
	require.ErrorIs(t, err, ErrExtraction)
}
