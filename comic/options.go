package comic

import (
	"github.com/charmbracelet/log"
	"github.com/dendrascience/comics/tree"
)

// DefaultStagingDir is where comics are unpacked while being edited,
// relative to the working directory.
const DefaultStagingDir = "_temp"

// Options configures a Comic.
type Options struct {
	StagingDir string
	Logger     *log.Logger
	// Verify compares the repacked archive with the staging tree before the
	// original container is replaced.
	Verify    bool
	Collision tree.CollisionPolicy
}

// Option is a functional option for configuring Open.
type Option func(*Options)

func defaultOptions() *Options {
	return &Options{
		StagingDir: DefaultStagingDir,
		Logger:     log.Default().WithPrefix("comic"),
		Verify:     true,
		Collision:  tree.CollisionOverwrite,
	}
}

// WithStagingDir sets the staging directory.
func WithStagingDir(dir string) Option {
	return func(o *Options) {
		if dir != "" {
			o.StagingDir = dir
		}
	}
}

// WithLogger sets the logger used for lifecycle and file operations.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVerify enables or disables post-write verification in Save.
func WithVerify(v bool) Option {
	return func(o *Options) { o.Verify = v }
}

// WithCollisionPolicy sets how Flatten handles duplicate file names.
func WithCollisionPolicy(p tree.CollisionPolicy) Option {
	return func(o *Options) { o.Collision = p }
}
