package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mkargin/shop-registry/pkg/validate"
)

// CLI-приложение для валидации файлов с пользователями или заказами
// (тем же набором правил, что и на пути записи сервисов).
func main() {
	entity := flag.String("entity", "orders", "record type: users|orders")
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()

	var record validate.RecordFunc
	switch *entity {
	case "users":
		record = validate.UserFromJSON(validate.NewUserValidator())
	case "orders":
		record = validate.OrderFromJSON(validate.NewOrderValidator())
	default:
		fmt.Fprintf(os.Stderr, "unknown entity: %s\n", *entity)
		os.Exit(2)
	}

	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	path := *inputPath
	if path == "" {
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
		path = "/dev/stdin"
	}

	summary, err := validate.ValidateFile(ctx, record, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
