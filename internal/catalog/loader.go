package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/ItemForge_Go/internal/logger"
	"github.com/osse101/ItemForge_Go/internal/validation"
)

// Load reads templates.json and balance.json from dir, validates both against
// their JSON schemas and builds the catalog.
func Load(ctx context.Context, dir string) (*Catalog, error) {
	schemas := validation.NewSchemaValidator()

	var templates TemplateFile
	if err := readFile(schemas, filepath.Join(dir, TemplatesFileName), TemplatesSchema, &templates); err != nil {
		return nil, err
	}

	var balance BalanceFile
	if err := readFile(schemas, filepath.Join(dir, BalanceFileName), BalanceSchema, &balance); err != nil {
		return nil, err
	}

	c, err := New(templates, balance)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"dir", dir,
		"templates", len(templates.Templates),
		"bonus_lists", len(balance.BonusLists),
		"templates_version", templates.Version,
		"balance_version", balance.Version)
	return c, nil
}

func readFile(schemas validation.SchemaValidator, path, schema string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadFileFailed, path, err)
	}
	if err := schemas.ValidateBytes(data, schema); err != nil {
		return fmt.Errorf(ErrMsgSchemaFailed, path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgParseFileFailed, path, err)
	}
	return nil
}
