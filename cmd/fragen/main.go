// Command fragen generates the synthetic FRA datasets the server runs
// on: claim GeoJSON, hierarchical CFR/IFR/CR data, state land-use layers
// and the polygon attribute cache.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"vanachitra/config"
	"vanachitra/generator"
	"vanachitra/models"
	"vanachitra/store"
)

var (
	outDir string
	seed   int64
)

var rootCmd = &cobra.Command{
	Use:   "fragen",
	Short: "Synthetic FRA dataset generator for Vanachitra",
	Long: `fragen writes the GeoJSON and JSON files the Vanachitra server
serves: pan-India FRA claim polygons, hierarchical CFR/IFR/CR data for
the focus states, ESA WorldCover style land-use layers, forest boundary
overlays with forest-constrained claims, satellite-analysis asset
polygons, and the polygon attribute cache used by the DSS.

All output is deterministic for a given --seed.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var claimsCmd = &cobra.Command{
	Use:   "claims",
	Short: "Generate pan-India FRA claim polygons with analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRNG()
		fc := generator.GenerateClaims(rng)
		path := filepath.Join(outDir, "telangana_fra_realistic.geojson")
		if err := generator.WriteJSON(path, fc); err != nil {
			return err
		}
		fmt.Printf("Wrote %d claims to %s\n", len(fc.Features), path)

		analytics := generator.BuildAnalytics(fc)
		analyticsPath := filepath.Join(outDir, "fra_analytics.json")
		if err := generator.WriteJSON(analyticsPath, analytics); err != nil {
			return err
		}
		fmt.Printf("Wrote analytics to %s\n", analyticsPath)
		return nil
	},
}

var cfrPerState int

var vanachitraCmd = &cobra.Command{
	Use:   "vanachitra",
	Short: "Generate hierarchical CFR/IFR/CR data for the focus states",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRNG()
		fc := generator.GenerateVanachitra(rng, cfrPerState)
		path := filepath.Join(outDir, "vanachitra_fra_data.geojson")
		if err := generator.WriteJSON(path, fc); err != nil {
			return err
		}
		fmt.Printf("Wrote %d features to %s\n", len(fc.Features), path)
		return nil
	},
}

var landuseState string

var landuseCmd = &cobra.Command{
	Use:   "landuse",
	Short: "Generate state land-use layers and the category legend",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRNG()
		states := generator.LanduseStateNames()
		if landuseState != "" {
			states = []string{landuseState}
		}
		for _, state := range states {
			fc := generator.GenerateLanduse(rng, state)
			if fc == nil {
				return fmt.Errorf("unknown state %q", state)
			}
			name := fileNameForState(state)
			path := filepath.Join(outDir, name)
			if err := generator.WriteJSON(path, fc); err != nil {
				return err
			}
			fmt.Printf("Wrote %d land-use polygons to %s\n", len(fc.Features), path)
		}
		legendPath := filepath.Join(outDir, "landuse_categories.json")
		if err := generator.WriteJSON(legendPath, generator.LanduseLegend()); err != nil {
			return err
		}
		fmt.Printf("Wrote legend to %s\n", legendPath)
		return nil
	},
}

var forestVillages int

var forestCmd = &cobra.Command{
	Use:   "forest",
	Short: "Generate the forest boundary layer and forest-constrained claims",
	Long: `forest extracts the Tree cover polygons from the Telangana land-use
layer, writes them as the dense forest boundary overlay, and generates
FRA claims placed strictly inside those boundaries.

Requires the land-use layer; run "fragen landuse" first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRNG()
		landusePath := filepath.Join(outDir, "telangana_landuse_dummy.geojson")
		landuse, err := models.LoadFeatureCollection(landusePath)
		if err != nil {
			return fmt.Errorf("loading land-use layer (run \"fragen landuse\" first): %w", err)
		}

		forests := generator.ForestPolygonsFromLanduse(landuse)
		if len(forests) == 0 {
			return fmt.Errorf("no Tree cover polygons in %s", landusePath)
		}

		layer := generator.BuildForestLayer(rng, forests)
		layerPath := filepath.Join(outDir, "dense_forest_leaflet.geojson")
		if err := generator.WriteJSON(layerPath, layer); err != nil {
			return err
		}
		fmt.Printf("Wrote %d forest boundaries to %s\n", len(layer.Features), layerPath)

		constrained := generator.GenerateConstrainedFRA(rng, forests, forestVillages)
		constrainedPath := filepath.Join(outDir, "telangana_fra_forest_only.geojson")
		if err := generator.WriteJSON(constrainedPath, constrained); err != nil {
			return err
		}
		fmt.Printf("Wrote %d forest-constrained claims to %s\n", len(constrained.Features), constrainedPath)
		return nil
	},
}

var assetsPerType int

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Generate satellite-analysis style asset polygons",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRNG()
		fc := generator.GenerateAssets(rng, assetsPerType)
		path := filepath.Join(outDir, "assets_enhanced.geojson")
		if err := generator.WriteJSON(path, fc); err != nil {
			return err
		}
		fmt.Printf("Wrote %d assets to %s\n", len(fc.Features), path)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Build the polygon attribute cache and optionally seed Postgres",
	Long: `seed reads the claim GeoJSON, synthesizes per-polygon attributes
conditioned on claim type, and writes them to the JSON attribute cache.
When DATABASE_URL is set the attributes are also upserted into the
polygon_attributes table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRNG()
		claimsPath := filepath.Join(outDir, "telangana_fra_realistic.geojson")
		fc, err := models.LoadFeatureCollection(claimsPath)
		if err != nil {
			return fmt.Errorf("loading claims: %w", err)
		}

		cache := generator.BuildAttributeCache(rng, fc)
		cachePath := filepath.Join(outDir, "polygon_attributes.json")
		if err := generator.WriteJSON(cachePath, cache); err != nil {
			return err
		}
		fmt.Printf("Wrote %d attribute records to %s\n", cache.Count, cachePath)

		dsn := config.DatabaseURL()
		if dsn == "" {
			fmt.Println("DATABASE_URL not set, skipping Postgres seed")
			return nil
		}
		st, err := store.Open(dsn)
		if err != nil {
			return fmt.Errorf("connecting to Postgres: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		if err := st.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
		if err := st.UpsertAttributes(ctx, cache.Items); err != nil {
			return fmt.Errorf("seeding attributes: %w", err)
		}
		fmt.Printf("Seeded %d attribute rows into Postgres\n", len(cache.Items))
		return nil
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate every dataset in one pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, sub := range []*cobra.Command{claimsCmd, vanachitraCmd, landuseCmd, forestCmd, assetsCmd, seedCmd} {
			if err := sub.RunE(sub, nil); err != nil {
				return err
			}
		}
		return nil
	},
}

func newRNG() *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func fileNameForState(state string) string {
	switch state {
	case "madhya pradesh":
		return "madhya_pradesh_landuse_dummy.geojson"
	default:
		return state + "_landuse_dummy.geojson"
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "output", "output directory for generated files")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (0 means time-based)")

	vanachitraCmd.Flags().IntVar(&cfrPerState, "cfr-per-state", 5, "CFR polygons per focus state")
	landuseCmd.Flags().StringVar(&landuseState, "state", "", "generate a single state only")
	forestCmd.Flags().IntVar(&forestVillages, "villages", 6, "villages to place in the largest forest areas")
	assetsCmd.Flags().IntVar(&assetsPerType, "per-type", 150, "base asset count per type per state")

	rootCmd.AddCommand(claimsCmd)
	rootCmd.AddCommand(vanachitraCmd)
	rootCmd.AddCommand(landuseCmd)
	rootCmd.AddCommand(forestCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(allCmd)
}

func main() {
	_ = config.LoadEnv() // .env is optional for the generator
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
