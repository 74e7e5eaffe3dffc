package excel

import (
	"io"

	"sellerflow/internal/domain"
)

var productAliases = map[string]string{
	"sku":            "sku",
	"código":         "sku",
	"codigo":         "sku",
	"name":           "name",
	"product":        "name",
	"product name":   "name",
	"nome":           "name",
	"produto":        "name",
	"price":          "price",
	"sell price":     "price",
	"sales price":    "price",
	"preço":          "price",
	"preco":          "price",
	"preço de venda": "price",
	"preco de venda": "price",
	"cost":           "cost",
	"buy price":      "cost",
	"custo":          "cost",
	"preço de custo": "cost",
	"preco de custo": "cost",
	"stock":          "stock",
	"quantity":       "stock",
	"estoque":        "stock",
	"quantidade":     "stock",
}

// ParseProductRows reads a product price list. sku and price are required;
// prices may be written as "R$ 1.234,56" or "1234.56".
func ParseProductRows(fileName string, reader io.Reader) ([]domain.ProductImportRow, error) {
	rows, err := readTable(fileName, reader)
	if err != nil {
		return nil, err
	}

	colMap := mapColumns(rows[0], productAliases)
	if err := requireColumns(colMap, "sku", "price"); err != nil {
		return nil, err
	}

	result := make([]domain.ProductImportRow, 0, len(rows)-1)
	for index := 1; index < len(rows); index++ {
		cells := rows[index]
		sku := readCell(cells, colMap, "sku")
		if sku == "" {
			continue
		}

		price, err := optionalFloat(cells, colMap, "price")
		if err != nil {
			return nil, rowError(index+1, "price", err)
		}
		cost, err := optionalFloat(cells, colMap, "cost")
		if err != nil {
			return nil, rowError(index+1, "cost", err)
		}
		stock, err := optionalInt(cells, colMap, "stock")
		if err != nil {
			return nil, rowError(index+1, "stock", err)
		}

		result = append(result, domain.ProductImportRow{
			SKU:   sku,
			Name:  readCell(cells, colMap, "name"),
			Price: price,
			Cost:  cost,
			Stock: stock,
		})
	}

	if len(result) == 0 {
		return nil, invalid("file has no valid data rows")
	}
	return result, nil
}
