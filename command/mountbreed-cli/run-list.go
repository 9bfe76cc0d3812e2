// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/urfave/cli"
)

type identityDisplay struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PublicKey   string `json:"public_key"`
	ReceiveOnly bool   `json:"receive_only,omitempty"`
	Default     bool   `json:"default,omitempty"`
}

type listDisplay struct {
	Connections       []string          `json:"connections"`
	ProgramID         string            `json:"program_id"`
	MetadataProgramID string            `json:"metadata_program_id"`
	Identities        []identityDisplay `json:"identities"`
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	programID, metadataProgramID, err := programIDs(m.config)
	if nil != err {
		return err
	}

	output := listDisplay{
		Connections:       m.config.Connections,
		ProgramID:         programID.String(),
		MetadataProgramID: metadataProgramID.String(),
		Identities:        make([]identityDisplay, 0, len(m.config.Identities)),
	}

	for name, id := range m.config.Identities {
		output.Identities = append(output.Identities, identityDisplay{
			Name:        name,
			Description: id.Description,
			PublicKey:   id.PublicKey,
			ReceiveOnly: "" == id.Data,
			Default:     name == m.config.DefaultIdentity,
		})
	}
	sort.Slice(output.Identities, func(i, j int) bool {
		return output.Identities[i].Name < output.Identities[j].Name
	})

	return printJson(m.w, output)
}
