package main

import (
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.BuyerModel{},
		model.SellerModel{},
		model.ProductModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
