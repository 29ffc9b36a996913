package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppDirName is the directory name used under the user config dir.
const AppDirName = "wordfinisher"

// PathResolver resolves the dictionary and config files relative to the binary,
// the working directory and the user config directory.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a resolver for the running executable
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := newPathResolver(filepath.Dir(execPath), homeDir)
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

func newPathResolver(execDir, homeDir string) *PathResolver {
	return &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
}

// getConfigDir returns the config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, ".config", AppDirName)
	}
}

// ConfigDir returns the per-user config directory
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// DictCandidates lists where a word list named by userPath may live, in lookup order:
// the path as given, next to the executable, then inside the config directory.
func (pr *PathResolver) DictCandidates(userPath string) []string {
	if filepath.IsAbs(userPath) {
		return []string{userPath}
	}
	candidates := []string{userPath}
	if cwd, err := os.Getwd(); err == nil {
		candidates[0] = filepath.Join(cwd, userPath)
	}
	return append(candidates,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, filepath.Base(userPath)),
	)
}

// GetDictPath returns the first existing candidate for userPath.
// When none exists the first candidate is returned so the loader reports a useful path.
func (pr *PathResolver) GetDictPath(userPath string) string {
	candidates := pr.DictCandidates(userPath)
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found word list: %s", path)
			return path
		}
		log.Debugf("Word list candidate missing: %s", path)
	}
	return candidates[0]
}

// GetConfigPath returns the path for filename inside the first writable config location
func (pr *PathResolver) GetConfigPath(filename string) string {
	dirs := []string{
		pr.configDir,
		filepath.Join(os.TempDir(), AppDirName),
		pr.executableDir,
	}
	for i, dir := range dirs {
		if result := CheckDirStatus(dir); result.Writable {
			if i > 0 {
				log.Warnf("Using fallback config location: %s", dir)
			}
			return filepath.Join(dir, filename)
		}
	}
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}
