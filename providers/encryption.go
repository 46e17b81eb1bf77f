package providers

import (
	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/encryption"
	"github.com/kbukum/laracore/provider"
)

// EncryptionServiceProvider binds the encrypter built from app.key and
// app.cipher as "encrypter".
type EncryptionServiceProvider struct{ provider.Base }

// Register binds the encrypter. A missing or malformed key surfaces when the
// encrypter is first resolved.
func (p *EncryptionServiceProvider) Register(c *container.Container) error {
	c.Singleton(container.KeyEncrypter, func(c *container.Container) (any, error) {
		settings, err := repository(c).AppSettings()
		if err != nil {
			return nil, err
		}
		return encryption.NewFromAppKey(settings.Key, settings.Cipher)
	})
	return nil
}
