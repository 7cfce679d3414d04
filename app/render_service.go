package app

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"residualmap/adapters/render"
	"residualmap/domain/residual"
)

// RenderService draws both visual encodings of a record set. The two charts
// consume the same input contract and are independent, so they render
// concurrently.
type RenderService struct {
	Heatmap render.HeatmapOptions
	Network render.NetworkOptions
}

// NewRenderService creates a render service with the default palettes for a
// variable pair.
func NewRenderService(var1, var2 string) *RenderService {
	return &RenderService{
		Heatmap: render.DefaultHeatmapOptions(),
		Network: render.DefaultNetworkOptions(var1, var2),
	}
}

// RenderAll writes heatmap and network charts into outDir with the given
// extension ("svg" or "png") and returns the created paths.
func (s *RenderService) RenderAll(ctx context.Context, set *residual.RecordSet, outDir, ext string) ([]string, error) {
	heatmapPath := filepath.Join(outDir, "heatmap."+ext)
	networkPath := filepath.Join(outDir, "network."+ext)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return render.SaveHeatmap(heatmapPath, set, s.Heatmap)
	})
	g.Go(func() error {
		return render.SaveNetwork(networkPath, set, s.Network)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return []string{heatmapPath, networkPath}, nil
}
