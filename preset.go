package textab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
)

const presetVersion = "1.0"

// Characters that cannot appear in a preset name on any supported
// filesystem.
const invalidNameChars = `<>:"/\|?*`

// PresetInfo describes a stored preset without loading its grid.
type PresetInfo struct {
	Name        string
	Description string
	Tags        []string
	Version     string
	Path        string
	Size        int64
	Modified    time.Time
}

// presetFile is the on-disk layout. The grid travels under table_data
// so presets written by earlier releases keep loading.
type presetFile struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	TableData   *Document `json:"table_data"`
	Version     string    `json:"version"`
}

// PresetStore keeps named grids as JSON documents in a directory, one
// file per preset.
type PresetStore struct {
	dir string
}

// DefaultPresetDir returns the per-user preset location.
func DefaultPresetDir() string {
	return filepath.Join(xdg.ConfigHome, "textab", "presets")
}

// NewPresetStore opens a store rooted at dir, creating the directory if
// it does not exist. An empty dir selects DefaultPresetDir.
func NewPresetStore(dir string) (*PresetStore, error) {
	if dir == "" {
		dir = DefaultPresetDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create preset directory %s: %w", dir, err)
	}
	return &PresetStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *PresetStore) Dir() string { return s.dir }

// Save writes the grid under name, overwriting any previous preset of
// the same name.
func (s *PresetStore) Save(g *Grid, name, description string, tags []string) error {
	if err := validatePresetName(name); err != nil {
		return err
	}
	if tags == nil {
		tags = []string{}
	}
	pf := presetFile{
		Name:        name,
		Description: description,
		Tags:        tags,
		TableData:   g.ToDocument(),
		Version:     presetVersion,
	}
	path := s.path(name)
	if err := writePresetFile(path, &pf); err != nil {
		return err
	}
	log.Debug().Str("name", name).Str("path", path).Msg("Saved preset")
	return nil
}

// Load reads the grid stored under name.
func (s *PresetStore) Load(name string) (*Grid, error) {
	pf, _, err := s.read(name)
	if err != nil {
		return nil, err
	}
	if pf.TableData == nil {
		return nil, fmt.Errorf("preset %q has no table data", name)
	}
	return FromDocument(pf.TableData)
}

// Info returns metadata for the preset stored under name.
func (s *PresetStore) Info(name string) (PresetInfo, error) {
	pf, fi, err := s.read(name)
	if err != nil {
		return PresetInfo{}, err
	}
	info := PresetInfo{
		Name:        pf.Name,
		Description: pf.Description,
		Tags:        pf.Tags,
		Version:     pf.Version,
		Path:        s.path(name),
		Size:        fi.Size(),
		Modified:    fi.ModTime(),
	}
	if info.Name == "" {
		info.Name = name
	}
	if info.Version == "" {
		info.Version = presetVersion
	}
	return info, nil
}

// List returns every preset in the store, most recently modified first.
// Files that do not parse are skipped with a warning.
func (s *PresetStore) List() ([]PresetInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	var infos []PresetInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		info, err := s.Info(name)
		if err != nil {
			log.Warn().Str("file", entry.Name()).Err(err).Msg("Skipping unreadable preset")
			continue
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Modified.After(infos[j].Modified)
	})
	return infos, nil
}

// Delete removes the preset stored under name.
func (s *PresetStore) Delete(name string) error {
	if err := os.Remove(s.path(name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("preset %q not found", name)
		}
		return fmt.Errorf("delete preset %q: %w", name, err)
	}
	log.Debug().Str("name", name).Msg("Deleted preset")
	return nil
}

// Rename moves a preset to a new name, rewriting the stored name field.
// It refuses to overwrite an existing preset.
func (s *PresetStore) Rename(oldName, newName string) error {
	if err := validatePresetName(newName); err != nil {
		return err
	}
	if _, err := os.Stat(s.path(newName)); err == nil {
		return fmt.Errorf("preset %q already exists", newName)
	}
	pf, _, err := s.read(oldName)
	if err != nil {
		return err
	}
	pf.Name = newName
	if err := writePresetFile(s.path(newName), pf); err != nil {
		return err
	}
	if err := os.Remove(s.path(oldName)); err != nil {
		return fmt.Errorf("remove old preset %q: %w", oldName, err)
	}
	log.Debug().Str("from", oldName).Str("to", newName).Msg("Renamed preset")
	return nil
}

// Search returns presets whose name, description, or any tag contains
// the query, case-insensitively.
func (s *PresetStore) Search(query string) ([]PresetInfo, error) {
	query = strings.ToLower(query)
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	var results []PresetInfo
	for _, info := range all {
		if presetMatches(info, query) {
			results = append(results, info)
		}
	}
	return results, nil
}

// ByTag returns presets carrying the exact tag, case-insensitively.
func (s *PresetStore) ByTag(tag string) ([]PresetInfo, error) {
	tag = strings.ToLower(tag)
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	var results []PresetInfo
	for _, info := range all {
		for _, t := range info.Tags {
			if strings.ToLower(t) == tag {
				results = append(results, info)
				break
			}
		}
	}
	return results, nil
}

// Export copies the preset stored under name to dest.
func (s *PresetStore) Export(name, dest string) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("preset %q not found", name)
		}
		return fmt.Errorf("read preset %q: %w", name, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("export preset %q: %w", name, err)
	}
	return nil
}

// Import copies a preset file into the store. A non-empty newName
// renames it on the way in; otherwise the file's base name is kept.
func (s *PresetStore) Import(path, newName string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var pf presetFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if pf.TableData == nil || pf.TableData.Rows < 1 || pf.TableData.Cols < 1 {
		return fmt.Errorf("%s does not hold a table preset", path)
	}
	name := newName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	if err := validatePresetName(name); err != nil {
		return err
	}
	pf.Name = name
	if err := writePresetFile(s.path(name), &pf); err != nil {
		return err
	}
	log.Debug().Str("name", name).Str("source", path).Msg("Imported preset")
	return nil
}

func (s *PresetStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *PresetStore) read(name string) (*presetFile, os.FileInfo, error) {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("preset %q not found", name)
		}
		return nil, nil, fmt.Errorf("read preset %q: %w", name, err)
	}
	var pf presetFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, nil, fmt.Errorf("decode preset %q: %w", name, err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat preset %q: %w", name, err)
	}
	return &pf, fi, nil
}

func writePresetFile(path string, pf *presetFile) error {
	data, err := json.MarshalIndent(pf, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preset %q: %w", pf.Name, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write preset %q: %w", pf.Name, err)
	}
	return nil
}

func validatePresetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("preset name is empty")
	}
	if strings.ContainsAny(name, invalidNameChars) {
		return fmt.Errorf("preset name %q contains one of %s", name, invalidNameChars)
	}
	return nil
}

func presetMatches(info PresetInfo, query string) bool {
	if strings.Contains(strings.ToLower(info.Name), query) ||
		strings.Contains(strings.ToLower(info.Description), query) {
		return true
	}
	for _, tag := range info.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
