package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/litai12/Tanva-sub005/internal/assets"
	"github.com/litai12/Tanva-sub005/internal/config"
	"github.com/litai12/Tanva-sub005/internal/crop"
	"github.com/litai12/Tanva-sub005/internal/source"
	"github.com/litai12/Tanva-sub005/internal/split"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	imagePath := flag.String("image", "", "Path to the source image file")
	assetKey := flag.String("asset", "", "Key of a stored source asset (alternative to -image)")
	store := flag.Bool("store", false, "Persist the source image into the asset store before splitting")
	count := flag.Int("count", split.DefaultCount, "Requested output count (1-50)")
	inline := flag.Bool("inline", false, "Force the synchronous execution strategy")
	crops := flag.Bool("crops", false, "Write the cropped sub-images as WebP files")
	assetDir := flag.String("assets", "", "Asset store directory (default: assets)")
	outputDir := flag.String("output", "", "Crop output directory (default: crops)")
	workers := flag.Int("workers", 0, "Number of crop worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		AssetDir:  *assetDir,
		OutputDir: *outputDir,
		Workers:   *workers,
	})

	// Resolve the source: raw file bytes, or a key into the asset store.
	var (
		data     []byte
		img      *image.NRGBA
		key      string
		resolver assets.Resolver
	)
	if *imagePath != "" {
		raw, err := os.ReadFile(*imagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading image: %v\n", err)
			os.Exit(1)
		}
		data = raw
	}
	if *assetKey != "" || *store {
		st, err := assets.Open(cfg.AssetDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening asset store: %v\n", err)
			os.Exit(1)
		}
		if *store {
			// Persist the bytes so the split stays reproducible
			if len(data) == 0 {
				fmt.Fprintln(os.Stderr, "Error: -store needs -image")
				os.Exit(1)
			}
			key, err = st.Put(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error storing asset: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Asset: %s\n", key)
		} else {
			key = *assetKey
		}
		resolver = assets.NewCache(st)
	}
	if data == nil && key == "" {
		fmt.Fprintln(os.Stderr, "Error: need -image or -asset")
		os.Exit(1)
	}

	start := time.Now()
	var (
		res split.Result
		err error
	)
	if key != "" {
		// Stored assets come through the decode cache; the crop stage
		// below reuses the same decode instead of rasterizing again.
		img = resolver.Resolve(key)
		if img == nil {
			fmt.Fprintf(os.Stderr, "Error: asset %s does not resolve\n", key)
			os.Exit(1)
		}
		res, err = split.Split(img, *count)
	} else {
		var host *split.Host
		if *inline {
			host = split.NewInlineHost(split.DefaultOptions())
		} else {
			host = split.NewHost(split.DefaultOptions())
		}
		defer host.Close()
		res, err = host.Split(context.Background(), data, *count)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Split failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	fmt.Printf("Rects: %d in %.0fms\n", len(res.Rects), time.Since(start).Seconds()*1000)

	if !*crops {
		return
	}

	// Render the crops against the same decoded source
	if img == nil {
		img, err = source.Decode(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding for crops: %v\n", err)
			os.Exit(1)
		}
	}

	results := crop.Run(crop.Config{
		OutputDir: cfg.OutputDir,
		Workers:   cfg.Workers,
		Progress:  len(res.Rects) > 8,
	}, img, res.Rects)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(os.Stderr, "  crop %d: %s\n", r.Index, r.Error)
		}
	}
	fmt.Printf("Crops: %d written, %d failed → %s\n", len(results)-failed, failed, cfg.OutputDir)
	if failed > 0 {
		os.Exit(1)
	}
}
