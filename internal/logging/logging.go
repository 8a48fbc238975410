// seehuhn.de/go/bresenham - integer line rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logging configures the default slog logger for the commands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// Config selects the log output format.
type Config struct {
	// Handler is "text" or "json".  The empty string selects "text".
	Handler string

	// Level is the minimum level of messages to log.
	Level slog.Level
}

// Setup installs a default logger writing to w.
func Setup(w io.Writer, cfg Config) error {
	options := slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Handler {
	case "text", "":
		handler = slog.NewTextHandler(w, &options)
	case "json":
		handler = slog.NewJSONHandler(w, &options)
	default:
		return fmt.Errorf("unsupported handler: '%s'", cfg.Handler)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
