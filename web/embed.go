package web

import "embed"

// FS contains the embedded static assets served under /static and copied by
// the exporter. Patterns are relative to this file's directory.
//
//go:embed static/*
var FS embed.FS

// TailwindSource is the Tailwind theme and dark variant the browser build
// compiles utility classes against. Pages inline it.
//
//go:embed static/css/tailwind.css
var TailwindSource string
