package scraper

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{
	"name", "brand", "colorway", "marketValue",
	"gender", "imageOriginal", "imageThumbnail", "releaseDate",
}

// WriteCSV renders the rows with the header the importer expects.
func WriteCSV(w io.Writer, sneakers []Sneaker) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, s := range sneakers {
		marketValue := ""
		if s.MarketValue != nil {
			marketValue = strconv.FormatFloat(*s.MarketValue, 'f', -1, 64)
		}
		record := []string{
			s.Name,
			s.Brand,
			s.Colorway,
			marketValue,
			s.Gender,
			s.ImageOriginal,
			s.ImageThumbnail,
			s.ReleaseDate,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the export to path, truncating any previous run.
func WriteCSVFile(path string, sneakers []Sneaker) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteCSV(f, sneakers); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
