// Package fusefs exposes a desktop's virtual file tree as a read-only FUSE
// file system. Folders become directories and files become regular files
// whose bytes are the record content.
package fusefs

import (
	"context"
	"os"
	"syscall"
	"time"

	"serwer-pulpitu/internal/models"
	"serwer-pulpitu/internal/vfs"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"
)

type FS struct {
	files *vfs.Store
	uid   uint32
	gid   uint32
}

var _ fusefs.FS = (*FS)(nil)

func New(files *vfs.Store) *FS {
	return &FS{
		files: files,
		uid:   uint32(os.Getuid()),
		gid:   uint32(os.Getgid()),
	}
}

func (f *FS) Root() (fusefs.Node, error) {
	return &Dir{fs: f, id: f.files.RootID()}, nil
}

func (f *FS) setTimes(a *fuse.Attr, rec models.FileRecord) {
	a.Mtime = rec.ModifiedAt
	a.Ctime = rec.ModifiedAt
	a.Atime = rec.ModifiedAt
	a.Crtime = rec.CreatedAt
	a.Uid = f.uid
	a.Gid = f.gid
}

type Dir struct {
	fs *FS
	id string
}

var (
	_ fusefs.Node               = (*Dir)(nil)
	_ fusefs.NodeStringLookuper = (*Dir)(nil)
	_ fusefs.HandleReadDirAller = (*Dir)(nil)
)

func (d *Dir) Attr(_ context.Context, a *fuse.Attr) error {
	rec, ok := d.fs.files.Get(d.id)
	if !ok {
		return syscall.ENOENT
	}
	a.Mode = os.ModeDir | 0555
	d.fs.setTimes(a, rec)
	return nil
}

// Lookup resolves name to the first child with that name in list order.
func (d *Dir) Lookup(_ context.Context, name string) (fusefs.Node, error) {
	for _, child := range d.fs.files.Children(&d.id) {
		if child.Name != name {
			continue
		}
		if child.IsFolder() {
			return &Dir{fs: d.fs, id: child.ID}, nil
		}
		return &File{fs: d.fs, id: child.ID}, nil
	}
	return nil, syscall.ENOENT
}

func (d *Dir) ReadDirAll(_ context.Context) ([]fuse.Dirent, error) {
	if _, ok := d.fs.files.Get(d.id); !ok {
		return nil, syscall.ENOENT
	}

	children := d.fs.files.Children(&d.id)
	entries := make([]fuse.Dirent, 0, len(children))
	seen := make(map[string]bool, len(children))
	for _, child := range children {
		if seen[child.Name] {
			continue
		}
		seen[child.Name] = true

		typ := fuse.DT_File
		if child.IsFolder() {
			typ = fuse.DT_Dir
		}
		entries = append(entries, fuse.Dirent{Name: child.Name, Type: typ})
	}
	return entries, nil
}

type File struct {
	fs *FS
	id string
}

var (
	_ fusefs.Node            = (*File)(nil)
	_ fusefs.NodeOpener      = (*File)(nil)
	_ fusefs.HandleReadAller = (*File)(nil)
)

func (f *File) Attr(_ context.Context, a *fuse.Attr) error {
	rec, ok := f.fs.files.Get(f.id)
	if !ok {
		return syscall.ENOENT
	}
	a.Mode = 0444
	a.Size = uint64(len(rec.Content))
	a.BlockSize = 4096
	a.Blocks = (a.Size + 511) / 512
	f.fs.setTimes(a, rec)
	return nil
}

func (f *File) Open(_ context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fusefs.Handle, error) {
	if !req.Flags.IsReadOnly() {
		return nil, syscall.EROFS
	}
	resp.Flags |= fuse.OpenKeepCache
	return f, nil
}

func (f *File) ReadAll(_ context.Context) ([]byte, error) {
	rec, ok := f.fs.files.Get(f.id)
	if !ok {
		return nil, syscall.ENOENT
	}
	return []byte(rec.Content), nil
}

// Mount mounts the tree at mountPoint and serves it until ctx is cancelled
// or the file system is unmounted externally.
func Mount(ctx context.Context, mountPoint string, fsys *FS) error {
	c, err := fuse.Mount(mountPoint,
		fuse.FSName("desktopfs"),
		fuse.Subtype("desktopfs"),
		fuse.ReadOnly(),
		fuse.DefaultPermissions(),
	)
	if err != nil {
		return err
	}
	defer c.Close()

	done := make(chan error, 1)
	go func() {
		done <- fusefs.Serve(c, fsys)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if err := unmountWithRetry(mountPoint); err != nil {
			return err
		}
		return <-done
	}
}

func unmountWithRetry(mountPoint string) error {
	var err error
	for i := 0; i < 10; i++ {
		if err = fuse.Unmount(mountPoint); err == nil {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return err
}
