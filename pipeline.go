package isotile

import (
	"context"
	"errors"
	"image"
	"sync"
)

func (s *Slicer) findRows(ctx context.Context, rows int) (<-chan int, <-chan error, error) {
	out := make(chan int)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for row := 0; row < rows; row++ {
			select {
			case out <- row:
			case <-ctx.Done():
				errc <- errors.New("slice cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

// rowWorker extracts every cell of each row it receives. Each row is only
// ever handled by one worker so results[row] needs no locking.
func (s *Slicer) rowWorker(ctx context.Context, m image.Image, cols int, in <-chan int, results [][]Tile) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for row := range in {
			if err := ctx.Err(); err != nil {
				errc <- err
				return
			}
			for col := 0; col < cols; col++ {
				offset := CellOffset(row, col, s.config.TileWidth, s.config.TileHeight)
				tile, ok := ExtractTile(m, s.shape, offset, s.config.TileWidth, s.config.TileHeight, s.config.Background)
				if !ok {
					continue
				}
				results[row] = append(results[row], Tile{
					Image:  tile,
					Row:    row,
					Col:    col,
					Offset: offset,
				})
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Slice cuts m into tiles. Rows are extracted concurrently but the returned
// tiles are always in row-major order and numbered sequentially from the
// configured starting index.
func (s *Slicer) Slice(m image.Image) ([]Tile, error) {
	b := m.Bounds()
	cols, rows := GridSize(b.Dx(), b.Dy(), s.config.TileWidth, s.config.TileHeight)
	s.logger.Printf("Slicing %dx%d image into %d rows of %d columns\n", b.Dx(), b.Dy(), rows, cols)

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	in, errc, err := s.findRows(ctx, rows)
	if err != nil {
		return nil, err
	}
	errcList = append(errcList, errc)

	results := make([][]Tile, rows)
	for i := 0; i < s.workers; i++ {
		errc, err := s.rowWorker(ctx, m, cols, in, results)
		if err != nil {
			return nil, err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, err
	}

	var tiles []Tile
	for _, row := range results {
		for _, tile := range row {
			tile.Index = s.config.StartIndex + len(tiles)
			tiles = append(tiles, tile)
		}
	}

	s.logger.Printf("Kept %d of %d tiles\n", len(tiles), rows*cols)

	return tiles, nil
}
