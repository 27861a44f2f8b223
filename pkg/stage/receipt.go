// pkg/stage/receipt.go
package stage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ReceiptName is the filename of the build receipt inside a staged package
const ReceiptName = "build-receipt.yaml"

// Receipt records one completed staging run. A package tree without a
// receipt, or whose recorded digests no longer match, is treated as partial
// and not installable.
type Receipt struct {
	ID        string           `yaml:"id"`
	CreatedAt time.Time        `yaml:"created_at"`
	Platform  string           `yaml:"platform"`
	BuildType string           `yaml:"build_type"`
	Artifacts []ArtifactRecord `yaml:"artifacts"`
}

// ArtifactRecord is one staged file with its content digest
type ArtifactRecord struct {
	Name   string `yaml:"name"`
	File   string `yaml:"file"`
	SHA256 string `yaml:"sha256"`
}

// NewReceipt creates an empty receipt for the given platform and build type
func NewReceipt(platform, buildType string) *Receipt {
	return &Receipt{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Platform:  platform,
		BuildType: buildType,
	}
}

// Add records a staged file, hashing its contents
func (r *Receipt) Add(name, path string) error {
	sum, err := hashFile(path)
	if err != nil {
		return err
	}
	r.Artifacts = append(r.Artifacts, ArtifactRecord{
		Name:   name,
		File:   filepath.Base(path),
		SHA256: sum,
	})
	return nil
}

// Write writes the receipt into the package directory
func (r *Receipt) Write(pkgDir string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling receipt: %w", err)
	}
	if err := os.WriteFile(filepath.Join(pkgDir, ReceiptName), data, 0644); err != nil {
		return fmt.Errorf("writing receipt: %w", err)
	}
	return nil
}

// LoadReceipt reads the receipt from a staged package directory
func LoadReceipt(pkgDir string) (*Receipt, error) {
	data, err := os.ReadFile(filepath.Join(pkgDir, ReceiptName))
	if err != nil {
		return nil, fmt.Errorf("reading receipt: %w", err)
	}
	var r Receipt
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing receipt: %w", err)
	}
	return &r, nil
}

// Verify re-hashes every recorded artifact under pkgDir and reports the
// first mismatch or missing file
func (r *Receipt) Verify(pkgDir string) error {
	for _, a := range r.Artifacts {
		sum, err := hashFile(filepath.Join(pkgDir, a.File))
		if err != nil {
			return fmt.Errorf("verifying %s: %w", a.File, err)
		}
		if sum != a.SHA256 {
			return fmt.Errorf("verifying %s: digest mismatch", a.File)
		}
	}
	return nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
