/*
 * Copyright (c) 2021-present Sigma-Soft, Ltd.
 */

package survey

import (
	"github.com/fieldnote/fieldnote/pkg/command"
	"github.com/fieldnote/fieldnote/pkg/extensions"
	"github.com/fieldnote/fieldnote/pkg/grammar"
)

// NewDocumentFormat builds the shore survey grammar.
//
// The sighting records (Fix, Comment) lead with the observation number and
// timestamp and carry their keyword at token 3; the setup records carry
// theirs at token 0. Dispatch tries the smaller keyword set first, so the
// two sighting keywords win over the five setup keywords.
func NewDocumentFormat() grammar.IDocumentFormat {
	return grammar.NewDocumentFormat(grammar.DocumentFormatDef{
		Name: GrammarName,
		Formats: []grammar.FormatDef{
			{
				Type: StationType,
				Spec: "Station* {id} {name} Lat {latitude} Lon {longitude} El {elevation}",
			},
			{
				Type: TheodoliteType,
				Spec: "Theodolite* {id} {name} AzOff {azimuthOffset:angle} DecOff {declinationOffset:angle}",
			},
			{
				Type: ReferenceType,
				Spec: "Reference* {id} {name} Az {azimuth:angle}",
			},
			{
				Type: ObserverType,
				Spec: "Observer* {initials} {name}",
			},
			{
				Type: PodType,
				Spec: "Pod* {id} Whales {numWhales} Calves {numCalves} Singers {numSingers}",
			},
			{
				Type: FixType,
				Spec: "{observationNum:05d} {date} {time} Fix* Dec {declination:angle} " +
					"Az {azimuth:angle} {objectType} {objectId} State {state}",
			},
			{
				Type: CommentType,
				Spec: "{observationNum:05d} {date} {time} Comment* {text}",
			},
		},
	})
}

// NewInterpreter creates the command interpreter observers use during a
// watch. Sighting commands rely on the session context for observation
// numbers and timestamps.
func NewInterpreter(docFormat grammar.IDocumentFormat) command.IInterpreter {
	return command.NewInterpreter(docFormat, []command.CommandDef{
		{Format: "s id name latitude longitude elevation", Type: StationType},
		{Format: "t id name azimuthOffset declinationOffset", Type: TheodoliteType},
		{Format: "r id name azimuth", Type: ReferenceType},
		{Format: "o initials name", Type: ObserverType},
		{Format: "p id numWhales numCalves numSingers", Type: PodType},
		{Format: "f declination azimuth objectType objectId state", Type: FixType},
		{Format: "c text", Type: CommentType},
	})
}

// Register adds the grammar and its interpreter to the registry.
func Register(reg extensions.IRegistry) {
	reg.AddDocumentFormat(NewDocumentFormat())
	reg.AddInterpreterFactory(GrammarName, NewInterpreter)
}
