package regen

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"mesh-viewer/internal/logger"
	"mesh-viewer/internal/mesh"
	"mesh-viewer/internal/primitives"
)

// Controller owns the live parameter set and the mesh built from it. The UI host mutates
// Params in place; Sync compares the live set with the last applied snapshot and rebuilds
// only when something changed. Not safe for concurrent use: all calls come from the
// frame loop.
type Controller struct {
	log     *logger.Logger
	live    primitives.Set
	applied primitives.Set
	mesh    *mesh.Mesh
	gen     uint64
	lastErr error
	// last set that failed to build; meaningful while lastErr is set
	rejected primitives.Set

	onSwitch  []func(from, to primitives.Family)
	onRebuild []func(*mesh.Mesh)
}

// New builds the initial mesh from initial and logs rebuilds to log. It fails if initial
// does not describe a valid solid.
func New(log *logger.Logger, initial primitives.Set) (*Controller, error) {
	m, err := primitives.Build(initial)
	if err != nil {
		return nil, fmt.Errorf("regen: initial %s: %w", initial.Family, err)
	}
	c := &Controller{
		log:     log,
		live:    initial,
		applied: initial,
		mesh:    m,
		gen:     1,
	}
	c.logRebuild("mesh built")
	return c, nil
}

// Params returns the live parameter set. Edits made through the pointer take effect on the
// next Sync.
func (c *Controller) Params() *primitives.Set {
	return &c.live
}

// Sync rebuilds the mesh if the live set differs from the last applied one and reports
// whether a new mesh was produced. A family change builds with unit Scale and fires the
// switch hooks once the new mesh is in place. Edits to the records of inactive families
// only refresh the snapshot. When the build fails the previous mesh and the live Scale
// stay as they were and the error is returned (and kept in Err) until the next successful
// rebuild; the same rejected set is not retried.
func (c *Controller) Sync() (bool, error) {
	if c.live.Identical(c.applied) {
		c.lastErr = nil
		return false, nil
	}
	from, to := c.applied.Family, c.live.Family
	next := c.live
	if from != to {
		next.Scale = primitives.UnitScale
	}
	if next.SameSolid(c.applied) {
		c.applied = next
		c.lastErr = nil
		return false, nil
	}
	if c.lastErr != nil && next.Identical(c.rejected) {
		return false, nil
	}

	m, err := primitives.Build(next)
	if err != nil {
		c.lastErr = err
		c.rejected = next
		c.entry().WithError(err).Warn("rebuild rejected")
		return false, err
	}
	c.live.Scale = next.Scale
	c.mesh = m
	c.applied = next
	c.gen++
	c.lastErr = nil
	c.logRebuild("mesh rebuilt")
	if from != to {
		for _, fn := range c.onSwitch {
			fn(from, to)
		}
	}
	for _, fn := range c.onRebuild {
		fn(m)
	}
	return true, nil
}

// Select switches the active family and syncs.
func (c *Controller) Select(f primitives.Family) (bool, error) {
	c.live.Family = f
	return c.event()
}

// Edit applies fn to the live set and syncs, so one call is one change event.
func (c *Controller) Edit(fn func(*primitives.Set)) (bool, error) {
	fn(&c.live)
	return c.event()
}

// event is Sync for explicit user actions: repeating a rejected edit reports the error again.
func (c *Controller) event() (bool, error) {
	changed, err := c.Sync()
	if !changed && err == nil {
		err = c.lastErr
	}
	return changed, err
}

// Revert discards live edits that have not been applied (e.g. after a rejected rebuild).
func (c *Controller) Revert() {
	c.live = c.applied
	c.lastErr = nil
}

// Mesh returns the current mesh. It is never nil and always valid.
func (c *Controller) Mesh() *mesh.Mesh {
	return c.mesh
}

// Applied returns the parameter set the current mesh was built from.
func (c *Controller) Applied() primitives.Set {
	return c.applied
}

// Generation increments on every successful rebuild, starting at 1 for the initial mesh.
func (c *Controller) Generation() uint64 {
	return c.gen
}

// Err returns the last rejected rebuild, or nil.
func (c *Controller) Err() error {
	return c.lastErr
}

// OnSwitch registers fn to run when the active family changes.
func (c *Controller) OnSwitch(fn func(from, to primitives.Family)) {
	c.onSwitch = append(c.onSwitch, fn)
}

// OnRebuild registers fn to run after every successful rebuild with the new mesh.
func (c *Controller) OnRebuild(fn func(*mesh.Mesh)) {
	c.onRebuild = append(c.onRebuild, fn)
}

func (c *Controller) entry() *logrus.Entry {
	return c.log.WithField("family", c.live.Family.String())
}

func (c *Controller) logRebuild(msg string) {
	c.entry().WithFields(logrus.Fields{
		"vertices":   c.mesh.VertexCount(),
		"triangles":  c.mesh.TriangleCount(),
		"generation": c.gen,
	}).Info(msg)
}
