// Package export writes the contents of the key-value store to an .xlsx
// workbook so stored designs and preferences can be inspected outside the
// terminal.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/five82/studio/internal/design"
	"github.com/five82/studio/internal/storage"
)

// Sheet names.
const (
	SheetStorage     = "Storage"
	SheetRecent      = "Recent designs"
	SheetCategories  = "Template categories"
	SheetPreferences = "Preferences"
)

// Workbook exports kv to the .xlsx file at path. Malformed well-known keys
// still appear on the Storage sheet with their raw value; their typed sheet
// is left with only a header.
func Workbook(ctx context.Context, kv storage.KV, path string) error {
	keys, err := kv.Keys(ctx)
	if err != nil {
		return fmt.Errorf("list keys: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetStorage); err != nil {
		return err
	}
	rawRows := [][]any{}
	for _, k := range keys {
		v, ok, err := kv.Get(ctx, k)
		if err != nil {
			return fmt.Errorf("read %s: %w", k, err)
		}
		if ok {
			rawRows = append(rawRows, []any{k, v})
		}
	}
	if err := writeSheet(f, SheetStorage, []any{"key", "value"}, rawRows); err != nil {
		return err
	}

	recent, err := storage.RecentDesigns(ctx, kv)
	if !decodeOnly(err) {
		return err
	}
	if err := writeSheet(f, SheetRecent, []any{"#", "label", "json"}, listRows(recent)); err != nil {
		return err
	}
	categories, err := storage.TemplateCategories(ctx, kv)
	if !decodeOnly(err) {
		return err
	}
	if err := writeSheet(f, SheetCategories, []any{"#", "label", "json"}, listRows(categories)); err != nil {
		return err
	}
	prefs, err := storage.UserPreferences(ctx, kv)
	if !decodeOnly(err) {
		return err
	}
	if err := writeSheet(f, SheetPreferences, []any{"field", "value"}, prefRows(prefs)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// decodeOnly reports whether err is nil or a malformed stored value, which
// exports as its empty default.
func decodeOnly(err error) bool {
	var decodeErr *storage.DecodeError
	return err == nil || errors.As(err, &decodeErr)
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if sheet != SheetStorage {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}

func listRows(items []json.RawMessage) [][]any {
	rows := make([][]any, 0, len(items))
	for i, item := range items {
		rows = append(rows, []any{i + 1, design.EntryLabel(item), string(item)})
	}
	return rows
}

func prefRows(values map[string]any) [][]any {
	fields := make([]string, 0, len(values))
	for k := range values {
		fields = append(fields, k)
	}
	slices.Sort(fields)
	rows := make([][]any, 0, len(fields))
	for _, k := range fields {
		encoded, err := json.Marshal(values[k])
		if err != nil {
			encoded = []byte(fmt.Sprint(values[k]))
		}
		rows = append(rows, []any{k, string(encoded)})
	}
	return rows
}
