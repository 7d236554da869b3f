package isotile

import (
	"crypto/sha1"
	"database/sql"
	"fmt"
	"image"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver
)

// Encoder turns a tile image into bytes for storage.
type Encoder interface {
	Encode(image.Image) ([]byte, error)
}

// TileDB is a catalog of tiles. Identical tiles are stored once and every
// placement refers to its tile by id.
type TileDB struct {
	db *sql.DB
}

// NewTileDB opens or creates the catalog in file.
func NewTileDB(file string) (*TileDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS tile (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, png BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS placement (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, tile_id INTEGER NOT NULL, number INTEGER NOT NULL, grid_row INTEGER NOT NULL, grid_col INTEGER NOT NULL, top_px INTEGER NOT NULL, left_px INTEGER NOT NULL, FOREIGN KEY(tile_id) REFERENCES tile(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &TileDB{
		db: db,
	}, nil
}

// Close closes the catalog.
func (db *TileDB) Close() error {
	return db.db.Close()
}

// Import replaces every placement in the catalog with those in l, storing
// any tile image not already present and removing any tile no longer
// placed. tiles and l must be in the same order. The catalog is left
// unchanged if anything fails.
func (db *TileDB) Import(tiles []Tile, l *Layout, enc Encoder) (err error) {
	if len(tiles) != len(l.Placements) {
		return fmt.Errorf("layout has %d tiles, expected %d", len(l.Placements), len(tiles))
	}

	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM placement"); err != nil {
		return err
	}

	for i, t := range tiles {
		var b []byte
		if b, err = enc.Encode(t.Image); err != nil {
			return err
		}

		var id int64
		if id, err = addTile(tx, b); err != nil {
			return err
		}

		if err = addPlacement(tx, id, l.Placements[i]); err != nil {
			return err
		}
	}

	if _, err = tx.Exec("DELETE FROM tile WHERE id NOT IN (SELECT tile_id FROM placement)"); err != nil {
		return err
	}

	return tx.Commit()
}

func addTile(tx *sql.Tx, b []byte) (int64, error) {
	h := sha1.Sum(b)
	sha := fmt.Sprintf("%X", h[:])

	var id int64
	switch err := tx.QueryRow("SELECT id FROM tile WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO tile (sha1, png) VALUES (?, ?)", sha, b)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

func addPlacement(tx *sql.Tx, tile int64, p Placement) error {
	if _, err := tx.Exec("INSERT OR REPLACE INTO placement (name, tile_id, number, grid_row, grid_col, top_px, left_px) VALUES (?, ?, ?, ?, ?, ?, ?)", p.Filename, tile, p.Index, p.Row, p.Col, p.Top, p.Left); err != nil {
		return err
	}
	return nil
}

// FindTileByName returns the PNG stored for the placement name, or nil if
// there is no such placement.
func (db *TileDB) FindTileByName(name string) ([]byte, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT t.png FROM placement AS p JOIN tile AS t ON p.tile_id = t.id WHERE p.name = ?", name).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return b, nil
	default:
		return nil, err
	}
}

// Counts returns the number of distinct tiles and placements.
func (db *TileDB) Counts() (tiles, placements int, err error) {
	if err = db.db.QueryRow("SELECT COUNT(*) FROM tile").Scan(&tiles); err != nil {
		return
	}
	err = db.db.QueryRow("SELECT COUNT(*) FROM placement").Scan(&placements)
	return
}
