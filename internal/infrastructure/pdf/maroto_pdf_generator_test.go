package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/door-to-door/internal/domain/entity"
	"github.com/jhoicas/door-to-door/internal/infrastructure/pdf"
)

func TestGenerateSalesReportPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	manager := &entity.User{ID: 1, FirstName: "Mia", LastName: "Test", EmailAddress: "m1@co.com", RoleID: entity.RoleManager}
	rows := []entity.SalespersonSales{
		{FirstName: "Sue", LastName: "Test", NumSales: 2},
		{FirstName: "Sam", LastName: "Test", NumSales: 1},
	}

	b, err := g.GenerateSalesReportPDF(context.Background(), manager, rows, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateSalesReportPDF_SinVentas(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()
	manager := &entity.User{ID: 1, FirstName: "Mia", LastName: "Test"}

	b, err := g.GenerateSalesReportPDF(context.Background(), manager, nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestGenerateSalesReportPDF_SinManager(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator().GenerateSalesReportPDF(context.Background(), nil, nil, time.Now())
	assert.Error(t, err)
}
