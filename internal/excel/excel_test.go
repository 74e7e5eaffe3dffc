package excel

import (
	"bytes"
	"strings"
	"testing"

	"sellerflow/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseInventoryRowsPortugueseHeaders(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Código", "Produto", "Estoque", "Reservado", "Estoque Mínimo", "Armazém"},
		{"FONE-BT-01", "Fone Bluetooth", 45, 5, 10, "SP-01"},
		{"", "sem sku", 1, 0, 0, ""},
		{"CAPA-IP15", "Capa iPhone 15", "1.200", "", "", "RJ-02"},
	})

	rows, err := ParseInventoryRows("estoque.xlsx", buf)
	require.NoError(t, err)
	assert.Equal(t, []domain.InventoryImportRow{
		{SKU: "FONE-BT-01", Product: "Fone Bluetooth", Stock: 45, Reserved: 5, MinStock: 10, Location: "SP-01"},
		{SKU: "CAPA-IP15", Product: "Capa iPhone 15", Stock: 1200, Location: "RJ-02"},
	}, rows)
}

func TestParseInventoryRowsEnglishCSV(t *testing.T) {
	data := "SKU,Product Name,Quantity,Min_Stock,Location\nSKU-1,Mouse,12,3,A1\n"

	rows, err := ParseInventoryRows("inventory.csv", strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 12, rows[0].Stock)
	assert.Equal(t, 3, rows[0].MinStock)
	assert.Equal(t, "Mouse", rows[0].Product)
}

func TestParseInventoryRowsErrors(t *testing.T) {
	_, err := ParseInventoryRows("x.xlsx", workbook(t, [][]any{{"Produto", "Estoque"}, {"A", 1}}))
	require.ErrorIs(t, err, ErrInvalidFile)
	assert.Contains(t, err.Error(), "sku")

	_, err = ParseInventoryRows("x.xlsx", workbook(t, [][]any{{"SKU", "Stock"}, {"A", 1.5}}))
	require.ErrorIs(t, err, ErrInvalidFile)
	assert.Contains(t, err.Error(), "row 2")

	_, err = ParseInventoryRows("x.xlsx", workbook(t, [][]any{{"SKU", "Stock"}}))
	assert.ErrorIs(t, err, ErrInvalidFile)

	_, err = ParseInventoryRows("x.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidFile)

	_, err = ParseInventoryRows("x.xlsx", strings.NewReader("not a workbook"))
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestParseProductRowsSemicolonCSV(t *testing.T) {
	data := "Código;Nome;Preço de Venda;Custo;Estoque\n" +
		"PRD-1;Smartwatch;R$ 1.299,90;R$ 650,00;8\n" +
		"PRD-2;Carregador;89,90;;\n"

	rows, err := ParseProductRows("precos.csv", strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []domain.ProductImportRow{
		{SKU: "PRD-1", Name: "Smartwatch", Price: 1299.9, Cost: 650, Stock: 8},
		{SKU: "PRD-2", Name: "Carregador", Price: 89.9},
	}, rows)
}

func TestParseProductRowsWorkbookWithoutExtension(t *testing.T) {
	buf := workbook(t, [][]any{
		{"sku", "name", "price", "cost"},
		{"A-1", "Cable", "19.90", "7.5"},
	})

	rows, err := ParseProductRows("upload", buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 19.9, rows[0].Price, 1e-9)
	assert.InDelta(t, 7.5, rows[0].Cost, 1e-9)
}

func TestParseProductRowsBadPrice(t *testing.T) {
	_, err := ParseProductRows("p.csv", strings.NewReader("sku,price\nA,abc\n"))
	require.ErrorIs(t, err, ErrInvalidFile)
	assert.Contains(t, err.Error(), "price")

	_, err = ParseProductRows("p.csv", strings.NewReader("sku,name\nA,Cable\n"))
	assert.ErrorIs(t, err, ErrInvalidFile)
}
