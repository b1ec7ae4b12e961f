package snapshot

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"levelgen.dev/internal/models"
)

// Version of the snapshot layout
const Version = 1

// Ext is the file extension of snapshot files
const Ext = ".snap.zst"

// Header is written as a plain JSON line ahead of the gob body so that a
// snapshot can be identified without decoding it
type Header struct {
	Version   int       `json:"version"`
	LevelID   string    `json:"level_id"`
	Seed      uint64    `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
}

// SnapshotV1 is one stored level
type SnapshotV1 struct {
	Header Header
	Level  models.LevelExport
}

// PathFor returns where the snapshot of a level lives under dir
func PathFor(dir, levelID string) string {
	return filepath.Join(dir, levelID+Ext)
}

// WriteSnapshot stores a level as a zstd-compressed snapshot. Flush and
// close errors are returned so a truncated file is never reported as written
func WriteSnapshot(path string, level models.LevelExport) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	closed := false
	defer func() {
		if !closed {
			enc.Close()
		}
	}()

	bw := bufio.NewWriterSize(enc, 256*1024)

	snap := SnapshotV1{
		Header: Header{
			Version:   Version,
			LevelID:   level.ID,
			Seed:      level.Seed,
			CreatedAt: level.CreatedAt,
		},
		Level: level,
	}

	hb, err := json.Marshal(snap.Header)
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}
	closed = true
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish zstd frame: %w", err)
	}
	return nil
}

// ReadSnapshot loads a level written by WriteSnapshot
func ReadSnapshot(path string) (models.LevelExport, error) {
	var snap SnapshotV1
	f, err := os.Open(path)
	if err != nil {
		return snap.Level, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return snap.Level, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	// The gob body repeats the header
	if _, err := br.ReadBytes('\n'); err != nil {
		return snap.Level, fmt.Errorf("read header: %w", err)
	}

	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return snap.Level, fmt.Errorf("gob decode: %w", err)
	}
	if snap.Header.Version != Version {
		return snap.Level, fmt.Errorf("unsupported snapshot version %d", snap.Header.Version)
	}
	return snap.Level, nil
}
