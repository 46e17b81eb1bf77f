package providers

import (
	"github.com/spf13/afero"

	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/provider"
)

// KeyStorageFiles is the filesystem rooted at the storage path.
const KeyStorageFiles = "files.storage"

// FilesystemServiceProvider binds the "files" filesystem and a storage disk
// rooted at "path.storage".
type FilesystemServiceProvider struct{ provider.Base }

// Register binds the OS filesystem as "files" unless a filesystem is already
// bound, and binds the storage disk lazily.
func (p *FilesystemServiceProvider) Register(c *container.Container) error {
	if !c.Bound(container.KeyFiles) {
		c.Instance(container.KeyFiles, afero.NewOsFs())
	}
	c.Singleton(KeyStorageFiles, func(c *container.Container) (any, error) {
		fs, err := container.Resolve[afero.Fs](c, container.KeyFiles)
		if err != nil {
			return nil, err
		}
		root, err := container.Resolve[string](c, container.KeyPathStorage)
		if err != nil {
			return nil, err
		}
		return afero.NewBasePathFs(fs, root), nil
	})
	return nil
}
