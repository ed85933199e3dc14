package main

import (
	"encoding/json"
	"log"
	"net/http"

	"gopkg.in/macaron.v1"

	"github.com/Tashus/beam/animation"
)

// newControl wires the single control route: POST / with any subset of
// {delay, brightness, animation, colors}. A request with a body gets the
// post-update state back; an empty body just redirects home.
func newControl(cfg *animation.Config) *macaron.Macaron {
	m := macaron.Classic()
	m.Post("/", func(ctx *macaron.Context) {
		ctx.Header().Set("Access-Control-Allow-Origin", "*")

		body, err := ctx.Req.Body().Bytes()
		if err != nil {
			ctx.Resp.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(body) == 0 {
			ctx.Redirect("/")
			return
		}

		var u animation.Update
		if err := json.Unmarshal(body, &u); err != nil {
			log.Printf("bad control request: %v", err)
			ctx.Resp.WriteHeader(http.StatusBadRequest)
			return
		}
		cfg.Apply(u)

		resp, err := json.Marshal(cfg.Snapshot())
		if err != nil {
			ctx.Resp.WriteHeader(http.StatusInternalServerError)
			return
		}
		ctx.Header().Set("Content-Type", "application/json")
		ctx.Resp.Write(resp)
	})
	return m
}
