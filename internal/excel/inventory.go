package excel

import (
	"io"

	"sellerflow/internal/domain"
)

var inventoryAliases = map[string]string{
	"sku":             "sku",
	"código":          "sku",
	"codigo":          "sku",
	"product":         "product",
	"product name":    "product",
	"produto":         "product",
	"nome do produto": "product",
	"stock":           "stock",
	"quantity":        "stock",
	"qty":             "stock",
	"estoque":         "stock",
	"quantidade":      "stock",
	"reserved":        "reserved",
	"reservado":       "reserved",
	"min stock":       "min_stock",
	"minimum stock":   "min_stock",
	"estoque mínimo":  "min_stock",
	"estoque minimo":  "min_stock",
	"location":        "location",
	"localização":     "location",
	"localizacao":     "location",
	"armazém":         "location",
	"armazem":         "location",
}

// ParseInventoryRows reads an inventory spreadsheet. sku and stock columns
// are required; rows without a sku are skipped.
func ParseInventoryRows(fileName string, reader io.Reader) ([]domain.InventoryImportRow, error) {
	rows, err := readTable(fileName, reader)
	if err != nil {
		return nil, err
	}

	colMap := mapColumns(rows[0], inventoryAliases)
	if err := requireColumns(colMap, "sku", "stock"); err != nil {
		return nil, err
	}

	result := make([]domain.InventoryImportRow, 0, len(rows)-1)
	for index := 1; index < len(rows); index++ {
		cells := rows[index]
		sku := readCell(cells, colMap, "sku")
		if sku == "" {
			continue
		}

		stock, err := parseInt(readCell(cells, colMap, "stock"))
		if err != nil {
			return nil, rowError(index+1, "stock", err)
		}
		reserved, err := optionalInt(cells, colMap, "reserved")
		if err != nil {
			return nil, rowError(index+1, "reserved", err)
		}
		minStock, err := optionalInt(cells, colMap, "min_stock")
		if err != nil {
			return nil, rowError(index+1, "min_stock", err)
		}

		result = append(result, domain.InventoryImportRow{
			SKU:      sku,
			Product:  readCell(cells, colMap, "product"),
			Stock:    stock,
			Reserved: reserved,
			MinStock: minStock,
			Location: readCell(cells, colMap, "location"),
		})
	}

	if len(result) == 0 {
		return nil, invalid("file has no valid data rows")
	}
	return result, nil
}
