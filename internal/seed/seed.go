package seed

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"log/slog"
	"os"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/core/service"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDataset []byte

type Dataset struct {
	Collections []Collection `yaml:"collections"`
}

type Collection struct {
	Name    string   `yaml:"name"`
	Entries []string `yaml:"entries"`
}

func Load(r io.Reader) (*Dataset, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var dataset Dataset
	if err := decoder.Decode(&dataset); err != nil {
		return nil, errors.Wrap(err, "could not decode dataset")
	}

	return &dataset, nil
}

// LoadFile reads the dataset at path, or the default dataset when path is
// empty.
func LoadFile(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open dataset '%s'", path)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("could not close dataset file", slogx.Error(err))
		}
	}()

	dataset, err := Load(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return dataset, nil
}

func Default() (*Dataset, error) {
	dataset, err := Load(bytes.NewReader(defaultDataset))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return dataset, nil
}

// Apply creates every collection of the dataset, then its entries, in
// declaration order.
func Apply(ctx context.Context, collections *service.CollectionManager, entries *service.EntryManager, dataset *Dataset) error {
	for _, c := range dataset.Collections {
		collection, err := collections.CreateCollection(ctx, &service.CollectionInput{Name: c.Name})
		if err != nil {
			return errors.Wrapf(err, "could not create collection '%s'", c.Name)
		}

		ctx := slogx.WithAttrs(ctx, slog.String("collectionID", string(collection.ID())))

		for _, name := range c.Entries {
			if _, err := entries.CreateEntry(ctx, &service.EntryInput{Name: name}, collection.ID()); err != nil {
				return errors.Wrapf(err, "could not create entry '%s'", name)
			}
		}

		slog.InfoContext(ctx, "collection seeded", slog.String("name", c.Name), slog.Int("entries", len(c.Entries)))
	}

	return nil
}
