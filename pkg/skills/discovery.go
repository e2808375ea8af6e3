package skills

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jingkaihe/skillet/pkg/logger"
	"github.com/jingkaihe/skillet/pkg/telemetry"
)

// Discovery scans skill roots through an injected filesystem capability.
type Discovery struct {
	fsys FS
}

// Option is a function that configures a Discovery.
type Option func(*Discovery) error

// WithFS sets the filesystem capability scans run against. The default is
// the process filesystem; tests and remote-workspace integrations substitute
// their own.
func WithFS(fsys FS) Option {
	return func(d *Discovery) error {
		if fsys == nil {
			return errors.New("filesystem capability cannot be nil")
		}
		d.fsys = fsys
		return nil
	}
}

// NewDiscovery creates a Discovery with the given options.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{fsys: OSFS{}}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, errors.Wrap(err, "failed to configure skill discovery")
		}
	}
	return d, nil
}

// Skip records a directory entry that was examined during a scan and left
// out of the collection, with the reason it was dropped. Err carries the
// underlying read, parse, or validation error when there is one.
type Skip struct {
	Path   string
	Reason string
	Err    error
}

// Report is the full outcome of one scan: the skills that made it in plus
// one Skip per rejected entry. Skips are diagnostics, never failures; a bad
// entry cannot fail the scan.
type Report struct {
	ScanID  string
	Root    string
	Skills  map[string]*Skill
	Skipped []Skip
}

func (r *Report) skip(path, reason string, err error) {
	r.Skipped = append(r.Skipped, Skip{Path: path, Reason: reason, Err: err})
}

// Scan walks root, expecting one subdirectory per skill, and folds each
// entry into either the collection or the skip list. An entry needs a
// readable SKILL.md that parses, validates, and declares a name equal to the
// directory name; anything else is skipped with a warning. Non-directory
// entries and directories without a SKILL.md are passed over silently.
//
// A missing or unlistable root yields an empty report and no error: absent
// skill roots are the common case, not a failure. The only returned error is
// ctx cancellation, checked between entries; the report then carries
// whatever was gathered before the interruption.
func (d *Discovery) Scan(ctx context.Context, root string) (*Report, error) {
	ctx, span := telemetry.Tracer("skillet.skills").Start(ctx, "skills.scan",
		trace.WithAttributes(attribute.String("skills.root", root)))
	defer span.End()

	report := &Report{
		ScanID: uuid.NewString(),
		Root:   root,
		Skills: make(map[string]*Skill),
	}
	log := logger.G(ctx).WithField("scan_id", report.ScanID)

	if !d.fsys.IsDir(ctx, root) {
		log.WithField("dir", root).Debug("skills directory does not exist")
		return report, nil
	}

	entries, err := d.fsys.ReadDir(ctx, root)
	if err != nil {
		log.WithError(err).WithField("dir", root).Warn("failed to list skills directory")
		return report, nil
	}

	for _, path := range entries {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrap(err, "skill discovery interrupted")
		}
		if !d.fsys.IsDir(ctx, path) {
			continue
		}

		skillFile := filepath.Join(path, SkillFileName)
		if !d.fsys.IsFile(ctx, skillFile) {
			log.WithField("dir", path).Debug("skipping directory without SKILL.md")
			continue
		}

		content, err := d.fsys.Load(ctx, skillFile)
		if err != nil {
			log.WithError(err).WithField("file", skillFile).Warn("failed to read skill file")
			report.skip(path, "unreadable skill file", err)
			continue
		}

		meta, body, err := Parse(content)
		if err != nil {
			log.WithError(err).WithField("file", skillFile).Warn("failed to parse skill file")
			report.skip(path, "unparsable skill file", err)
			continue
		}

		if err := meta.Validate(); err != nil {
			log.WithError(err).WithField("file", skillFile).Warn("skill metadata failed validation")
			report.skip(path, "invalid metadata", err)
			continue
		}

		if dirName := filepath.Base(path); meta.Name != dirName {
			log.WithFields(logrus.Fields{
				"skill_name": meta.Name,
				"dir_name":   dirName,
			}).Warn("skill name does not match directory name")
			report.skip(path, "name does not match directory", nil)
			continue
		}

		skill := &Skill{Metadata: meta, Body: body, Path: path}
		report.Skills[skill.Name()] = skill
		log.WithField("skill", skill.Name()).Debug("discovered skill")
	}

	span.SetAttributes(
		attribute.Int("skills.discovered", len(report.Skills)),
		attribute.Int("skills.skipped", len(report.Skipped)),
	)
	return report, nil
}

// Discover scans root and returns the discovered skills keyed by name. It is
// Scan without the diagnostics.
func (d *Discovery) Discover(ctx context.Context, root string) (map[string]*Skill, error) {
	report, err := d.Scan(ctx, root)
	if err != nil {
		return nil, err
	}
	return report.Skills, nil
}

// DiscoverAll layers workspace skills over the global collection: the global
// root is scanned first, then each workspace's skills directory in order,
// with later roots winning by name.
func (d *Discovery) DiscoverAll(ctx context.Context, globalDir string, workspaceRoots []string) (map[string]*Skill, error) {
	merged, err := d.Discover(ctx, globalDir)
	if err != nil {
		return nil, err
	}
	for _, root := range workspaceRoots {
		workspace, err := d.Discover(ctx, WorkspaceDir(root))
		if err != nil {
			return nil, err
		}
		merged = Merge(merged, workspace)
	}
	return merged, nil
}

// DiscoverSync scans root against the process filesystem on the calling
// goroutine, with no suspension points. It returns the same collection
// Discover produces for an OSFS-backed Discovery.
func DiscoverSync(root string) map[string]*Skill {
	d := &Discovery{fsys: OSFS{}}
	report, _ := d.Scan(context.Background(), root)
	return report.Skills
}

// DiscoverAllSync merges the global and workspace collections synchronously,
// equivalent to DiscoverAll over the process filesystem.
func DiscoverAllSync(globalDir string, workspaceRoots []string) map[string]*Skill {
	d := &Discovery{fsys: OSFS{}}
	merged, _ := d.DiscoverAll(context.Background(), globalDir, workspaceRoots)
	return merged
}
