package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"produto-service/internal/domain"
)

// ProdutoWriter is the registry surface the importer needs. Register keeps the
// SKU-uniqueness rule in force for bulk loads too.
type ProdutoWriter interface {
	Register(ctx context.Context, p domain.Produto) (*domain.Produto, error)
}

// CSVImporter reads produto rows (nome, sku, preco) and registers each one.
type CSVImporter struct {
	reader *csv.Reader
	writer ProdutoWriter
}

func NewCSVImporter(r io.Reader, writer ProdutoWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader: csvr,
		writer: writer,
	}
}

// Run parses CSV rows and registers produtos. Rows whose SKU is already taken
// are skipped and counted; any other failure aborts the run.
func (i *CSVImporter) Run(ctx context.Context) (imported, skipped int, err error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, skipped, fmt.Errorf("read row: %w", err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, skipped, err
		}

		if _, err := i.writer.Register(ctx, *p); err != nil {
			if errors.Is(err, domain.ErrSKUConflict) {
				skipped++
				continue
			}
			return imported, skipped, fmt.Errorf("register produto %q: %w", p.SKU, err)
		}
		imported++
	}

	return imported, skipped, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*domain.Produto, error) {
	nome := pick(record, index, "nome")
	sku := pick(record, index, "sku")
	precoStr := pick(record, index, "preco")

	if nome == "" || sku == "" || precoStr == "" {
		return nil, fmt.Errorf("invalid produto row (missing required fields) for sku %q", sku)
	}

	preco, err := strconv.ParseFloat(precoStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid preco for sku %q: %w", sku, err)
	}
	if preco < 0 {
		return nil, fmt.Errorf("negative preco for sku %q", sku)
	}

	return &domain.Produto{
		Nome:  nome,
		SKU:   sku,
		Preco: preco,
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
