package bootstrap

import (
	stderrors "errors"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"

	"github.com/kbukum/laracore/errors"
)

// psr4Entry is one autoload.psr-4 mapping, in manifest order.
type psr4Entry struct {
	namespace string
	paths     []string
}

// GetNamespace returns the namespace whose autoload.psr-4 directory is the
// application source directory. The manifest is read once; the first match
// is cached.
func (a *Application) GetNamespace() (string, error) {
	if a.namespace != nil {
		return *a.namespace, nil
	}

	manifest := a.BasePath(a.manifest)
	data, err := afero.ReadFile(a.Filesystem(), manifest)
	if err != nil {
		return "", errors.NamespaceDetection(a.Path(), err)
	}
	entries, err := psr4Entries(data)
	if err != nil {
		return "", errors.NamespaceDetection(a.Path(), err)
	}

	appPath := a.Path()
	for _, entry := range entries {
		for _, choice := range entry.paths {
			if samePath(appPath, a.BasePath(choice)) {
				ns := entry.namespace
				a.namespace = &ns
				return ns, nil
			}
		}
	}
	return "", errors.NamespaceDetection(appPath, nil)
}

// psr4Entries streams the manifest so mappings keep their document order.
// A mapping value is a directory or a list of directories.
func psr4Entries(data []byte) ([]psr4Entry, error) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)

	var entries []psr4Entry
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		if field != "autoload" {
			it.Skip()
			return true
		}
		return it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			if field != "psr-4" {
				it.Skip()
				return true
			}
			return it.ReadObjectCB(func(it *jsoniter.Iterator, namespace string) bool {
				entries = append(entries, psr4Entry{namespace: namespace, paths: readPaths(it)})
				return true
			})
		})
	})

	if iter.Error != nil && !stderrors.Is(iter.Error, io.EOF) {
		return nil, iter.Error
	}
	return entries, nil
}

func readPaths(it *jsoniter.Iterator) []string {
	switch it.WhatIsNext() {
	case jsoniter.StringValue:
		return []string{it.ReadString()}
	case jsoniter.ArrayValue:
		var paths []string
		for it.ReadArray() {
			if it.WhatIsNext() == jsoniter.StringValue {
				paths = append(paths, it.ReadString())
			} else {
				it.Skip()
			}
		}
		return paths
	default:
		it.Skip()
		return nil
	}
}
