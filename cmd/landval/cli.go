package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/geojson"
	lvfs "github.com/fwojciec/landval/fs"
	"github.com/fwojciec/landval/shp"
	pgeojson "github.com/paulmach/orb/geojson"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Dir is the data directory relative paths are resolved against.
	Dir string

	Fetcher     landval.Fetcher
	RateLimiter landval.DomainLimiter
	Extractor   landval.TableExtractor

	// RetryDelays overrides the fetch backoff. Nil means crawl.DefaultRetryDelays.
	RetryDelays []time.Duration
}

// Path resolves p against the data directory.
func (d *Dependencies) Path(p string) string {
	if d.Dir == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.Dir, p)
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// readRegions parses the region list file at path.
func (d *Dependencies) readRegions(path string) (landval.RegionList, error) {
	f, err := os.Open(d.Path(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, landval.Errorf(landval.ENOTFOUND, "region list %s not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()
	return landval.ParseRegionList(f)
}

// readBoundaries reads boundary features from a GeoJSON file or a shapefile.
func (d *Dependencies) readBoundaries(path string) ([]*pgeojson.Feature, error) {
	if shp.IsShapefile(path) {
		return shp.ReadBoundaries(d.Path(path), d.logger())
	}
	return geojson.ReadFeatures(d.Path(path), d.logger())
}

// writeCollection encodes fc and writes it atomically to path.
func (d *Dependencies) writeCollection(path string, fc *pgeojson.FeatureCollection) error {
	data, err := geojson.Encode(fc)
	if err != nil {
		return err
	}
	return lvfs.WriteFileAtomic(d.Path(path), data)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir     string `short:"d" env:"LANDVAL_DIR" default:"." help:"Data directory that relative paths are resolved against"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Fetch      FetchCmd      `cmd:"" help:"Download the valuation page of every listed region"`
	Extract    ExtractCmd    `cmd:"" help:"Extract valuation tables from downloaded pages into per-region CSV files"`
	Inspect    InspectCmd    `cmd:"" help:"Show the valuation tables found in one page"`
	Boundaries BoundariesCmd `cmd:"" help:"Reduce region boundaries to one point per listed region"`
	Combine    CombineCmd    `cmd:"" help:"Join per-region valuation CSV files onto region points"`
	Points     PointsCmd     `cmd:"" help:"Turn geocoded valuation rows into point features"`
	Merge      MergeCmd      `cmd:"" help:"Concatenate the features of several GeoJSON files"`
	Run        RunCmd        `cmd:"" help:"Extract tables, reduce boundaries and combine them"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Regions   string        `arg:"" optional:"" default:"LGAcodes.txt" help:"Region list, one \"<code> <name>\" per line"`
	Out       string        `short:"o" default:"downloaded_html" help:"Directory for downloaded pages"`
	BaseURL   string        `default:"${base_url}" help:"Valuation page endpoint"`
	BaseDate  string        `default:"${base_date}" help:"Valuation base date (DDMMYYYY)"`
	Rate      float64       `default:"1" help:"Requests per second"`
	Burst     int           `default:"1" help:"Requests allowed at once before rate limiting applies"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	UserAgent string        `default:"${user_agent}" help:"User-Agent header sent with each request"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	HTML        string `default:"downloaded_html" help:"Directory of downloaded pages"`
	Residential string `default:"residential" help:"Output directory for residential tables"`
	Commercial  string `default:"commercial" help:"Output directory for commercial, industrial and rural tables"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	File  string `arg:"" help:"Downloaded valuation page"`
	Limit int    `short:"n" default:"0" help:"Show at most this many rows per table (0 shows all)"`
}

// BoundariesCmd is the "boundaries" subcommand.
type BoundariesCmd struct {
	Boundary string `arg:"" optional:"" default:"LGA_boundaries.geojson" help:"Boundary GeoJSON, shapefile or zipped shapefile"`
	Regions  string `arg:"" optional:"" default:"LGAcodes.txt" help:"Region list, one \"<code> <name>\" per line"`
	Out      string `short:"o" default:"filtered_LGA_boundaries.geojson" help:"Output GeoJSON file"`
}

// CombineCmd is the "combine" subcommand.
type CombineCmd struct {
	Points      string `arg:"" optional:"" default:"filtered_LGA_boundaries.geojson" help:"Region point GeoJSON"`
	Commercial  string `default:"commercial" help:"Directory of commercial-family CSV files"`
	Residential string `default:"residential" help:"Directory of residential CSV files"`
	Out         string `short:"o" default:"combined_land_values.geojson" help:"Output GeoJSON file"`
	Concurrency int    `short:"c" default:"4" help:"CSV files parsed at once"`
}

// PointsCmd is the "points" subcommand.
type PointsCmd struct {
	Dir string `arg:"" optional:"" default:"commercial" help:"Directory of geocoded CSV files"`
	Out string `short:"o" default:"land_values.geojson" help:"Output GeoJSON file"`
}

// MergeCmd is the "merge" subcommand.
type MergeCmd struct {
	Files []string `arg:"" help:"GeoJSON files to merge"`
	Out   string   `short:"o" default:"merged.geojson" help:"Output GeoJSON file"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Boundary    string `arg:"" optional:"" default:"LGA_boundaries.geojson" help:"Boundary GeoJSON, shapefile or zipped shapefile"`
	Regions     string `arg:"" optional:"" default:"LGAcodes.txt" help:"Region list, one \"<code> <name>\" per line"`
	HTML        string `default:"downloaded_html" help:"Directory of downloaded pages"`
	Residential string `default:"residential" help:"Directory for residential tables"`
	Commercial  string `default:"commercial" help:"Directory for commercial, industrial and rural tables"`
	Points      string `default:"filtered_LGA_boundaries.geojson" help:"Intermediate region point GeoJSON"`
	Out         string `short:"o" default:"combined_land_values.geojson" help:"Output GeoJSON file"`
	Concurrency int    `short:"c" default:"4" help:"CSV files parsed at once"`
}
