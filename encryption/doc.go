// Package encryption provides the application encrypter bound as "encrypter".
//
// The encrypter is keyed from the app.key setting, a 32-byte key usually
// stored as "base64:<key>", and seals values with an AEAD cipher selected by
// app.cipher: ChaCha20-Poly1305 (default) or AES-256-GCM.
//
// # Usage
//
//	key, _ := encryption.GenerateKey()
//	enc, err := encryption.NewFromAppKey(key, "chacha20-poly1305")
//	sealed, err := enc.Encrypt("secret")
//	plain, err := enc.Decrypt(sealed)
package encryption
