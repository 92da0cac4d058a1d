package tour

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/go-playground/validator/v10"
)

// City files hold a native-endian int32 count followed by count (x, y) int32 pairs.
var byteOrder = binary.NativeEndian

// ReadCities decodes a city file from r
func ReadCities(r io.Reader) ([]City, error) {
	var n int32
	if err := binary.Read(r, byteOrder, &n); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: missing city count", ErrTruncatedFile)
		}
		return nil, fmt.Errorf("failed to read city count: %w", err)
	}

	if err := ValidateCount(int(n)); err != nil {
		return nil, err
	}

	raw := make([]int32, 2*int(n))
	if err := binary.Read(r, byteOrder, raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: expected %d cities", ErrTruncatedFile, n)
		}
		return nil, fmt.Errorf("failed to read coordinates: %w", err)
	}

	cities := make([]City, n)
	for i := range cities {
		cities[i] = City{X: int(raw[2*i]), Y: int(raw[2*i+1])}
	}

	return cities, nil
}

// LoadCities reads a city file from disk
func LoadCities(path string) ([]City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot open file: %w", path, err)
	}
	defer f.Close()

	cities, err := ReadCities(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Loaded cities", "path", path, "count", len(cities))
	return cities, nil
}

// WriteCities encodes cities in the city file format
func WriteCities(w io.Writer, cities []City) error {
	raw := make([]int32, 0, 1+2*len(cities))
	raw = append(raw, int32(len(cities)))
	for _, c := range cities {
		raw = append(raw, int32(c.X), int32(c.Y))
	}

	if err := binary.Write(w, byteOrder, raw); err != nil {
		return fmt.Errorf("failed to write cities: %w", err)
	}
	return nil
}

// SaveCities writes a city file to disk
func SaveCities(path string, cities []City) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s: cannot open file: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := WriteCities(bw, cities); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush city file: %w", err)
	}

	return f.Close()
}

// GenerateOptions controls synthetic city placement
type GenerateOptions struct {
	Count  int   `validate:"gt=1,lte=100"`
	Seed   int64 `validate:"-"`
	Width  int   `validate:"gt=10"`
	Height int   `validate:"gt=10"`
}

var validate = validator.New()

// GenerateCities places Count cities uniformly at random, keeping a
// 5-cell margin on every side so labels stay on the map.
func GenerateCities(opts GenerateOptions) ([]City, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid generate options: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	cities := make([]City, opts.Count)
	for i := range cities {
		cities[i] = City{
			X: rng.Intn(opts.Width-10) + 5,
			Y: rng.Intn(opts.Height-10) + 5,
		}
	}

	return cities, nil
}
