package encryption

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/docseal/docseal/internal/config"
	"github.com/docseal/docseal/internal/fileutil"
)

// Processor handles the sealing and unsealing of document files.
type Processor struct {
	// cfg contains runtime configuration options.
	cfg *config.Config

	// pipeline is the two-stage cipher, built once at construction.
	pipeline *Pipeline

	// results channels processing outcomes to the printer goroutine.
	results chan Result
}

// NewProcessor resolves the key material and builds the cipher pipeline.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	material, err := resolveKey(cfg)
	if err != nil {
		return nil, err
	}

	pipeline, err := NewPipeline(Parameters{
		Multiplier: cfg.Multiplier,
		Addend:     cfg.Addend,
		Key:        material,
		Strict:     cfg.Strict,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pipeline: %w", err)
	}

	return &Processor{
		cfg:      cfg,
		pipeline: pipeline,
		results:  make(chan Result, len(cfg.Files)),
	}, nil
}

// Pipeline exposes the underlying cipher pipeline, for callers that operate
// on in-memory buffers rather than files.
func (p *Processor) Pipeline() *Pipeline {
	return p.pipeline
}

// resolveKey turns the configured key source into raw key bytes.
func resolveKey(cfg *config.Config) ([]byte, error) {
	switch {
	case cfg.Key != "":
		material, err := key.FromHex(cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}

		return material, nil

	case cfg.KeyFile != "":
		data, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		material, err := key.FromHex(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		return material, nil

	case cfg.Passphrase != "":
		salt, err := hex.DecodeString(cfg.Salt)
		if err != nil {
			return nil, fmt.Errorf("decoding salt: %w", err)
		}

		return KeyFromPassphrase(cfg.Passphrase, salt)

	default:
		return nil, errors.New("no key material configured")
	}
}

// MetadataPath returns the sidecar metadata path for a sealed container.
func MetadataPath(container string) string {
	return container + ".meta.json"
}

// ProcessFiles concurrently seals or unseals all configured files.
// Returns the number of successfully processed files, the number of errors,
// and the total output size.
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(os.Stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++
			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Printf("Processed %q -> %q\n", result.Input, result.Output) //nolint:forbidigo
			}

			if p.cfg.Delete {
				p.deleteInput(result.Input)
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.outputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// deleteInput removes a successfully processed input file; when unsealing,
// the sidecar goes with it.
func (p *Processor) deleteInput(input string) {
	if err := os.Remove(input); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting %q: %v\n", input, err)

		return
	}

	if p.cfg.Decrypt {
		os.Remove(MetadataPath(input)) //nolint:errcheck // sidecar may not exist
	}

	if !p.cfg.Quiet {
		fmt.Printf("Deleted %q\n", input) //nolint:forbidigo
	}
}

// processFile seals or unseals a single file, writing output atomically.
func (p *Processor) processFile(filename, outPath string) (int64, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return 0, fmt.Errorf("getting file info: %w", err)
	}

	input, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("reading input file: %w", err)
	}

	if p.cfg.Decrypt {
		err = p.unsealFile(input, filename, outPath)
	} else {
		err = p.sealFile(input, outPath)
	}

	if err != nil {
		return 0, err
	}

	size, err := fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, info.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}

const ownerReadWrite = 0o600

// sealFile encrypts input and writes the container plus its sidecar metadata.
func (p *Processor) sealFile(input []byte, outPath string) error {
	artifact, err := p.pipeline.Encrypt(input)
	if err != nil {
		return fmt.Errorf("encrypting file: %w", err)
	}

	if err := fileutil.WriteAtomic(outPath, artifact.Seal(), ownerReadWrite); err != nil {
		return fmt.Errorf("writing container: %w", err)
	}

	meta, err := artifact.Metadata.Encode()
	if err != nil {
		return err
	}

	if err := fileutil.WriteAtomic(MetadataPath(outPath), meta, ownerReadWrite); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}

	return nil
}

// unsealFile decrypts a container, using the sidecar metadata for integrity
// verification when it is present.
func (p *Processor) unsealFile(input []byte, filename, outPath string) error {
	meta, err := LoadSidecar(MetadataPath(filename))
	if err != nil {
		return err
	}

	plaintext, err := p.pipeline.DecryptContainer(input, meta)
	if err != nil {
		return fmt.Errorf("decrypting file: %w", err)
	}

	if err := fileutil.WriteAtomic(outPath, plaintext, ownerReadWrite); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// LoadSidecar reads the sidecar metadata record when present. A missing
// sidecar is not an error: the container alone is decryptable, it just
// forgoes the integrity check.
func LoadSidecar(path string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading metadata %q: %w", path, err)
	}

	return DecodeMetadata(data)
}

// outputPath generates the output file path based on the input filename and
// the configured suffixes.
func (p *Processor) outputPath(filename string) string {
	ext := p.cfg.EncryptSuffix

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.EncryptSuffix)
		ext = p.cfg.DecryptSuffix
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}
