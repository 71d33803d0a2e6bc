package main

import (
	"github.com/younwookim/neondodge/internal/application/scene"
	"github.com/younwookim/neondodge/internal/application/scene/gameover"
	"github.com/younwookim/neondodge/internal/application/scene/playing"
	"github.com/younwookim/neondodge/internal/application/scene/title"
)

// Router builds scenes on demand. Each transition gets a fresh scene.
type Router struct {
	env *scene.Env
}

// NewRouter creates a router sharing env with every scene
func NewRouter(env *scene.Env) *Router {
	return &Router{env: env}
}

func (r *Router) Title() scene.Scene {
	return title.New(r.env, r)
}

func (r *Router) Playing() scene.Scene {
	return playing.New(r.env, r)
}

func (r *Router) GameOver(result scene.Result) scene.Scene {
	return gameover.New(r.env, r, result)
}
