// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import "sort"

// Kind is the declared type of a configuration option. It is an explicit
// descriptor so the type of an option never has to be inferred from the
// runtime type of its default.
type Kind int

const (
	// KindBool accepts permissive yes/no literals.
	KindBool Kind = iota
	// KindInt accepts integer literals.
	KindInt
	// KindFloat accepts numeric literals.
	KindFloat
	// KindString accepts free-form text, optionally restricted by Choices.
	KindString
	// KindEnum accepts one of Choices and resolves to the canonical
	// lowercase label.
	KindEnum
	// KindValidated delegates parsing to the default's Validated
	// implementation.
	KindValidated
)

// Label returns the type name used in value error messages.
func (k Kind) Label() string {
	switch k {
	case KindBool:
		return "yes/no value"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	default:
		return "string"
	}
}

// Option declares one (section, option) schema entry: its type descriptor,
// default value, and, for restricted string/enum options, the ordered list
// of accepted lowercase choices (matched case-insensitively).
type Option struct {
	Kind    Kind
	Default any
	Choices []string
}

// Image quality defaults depend on the output format, so the schema holds a
// placeholder and callers substitute the format-specific value.
const (
	QualityPlaceholder = 0
	DefaultJPGQuality  = 95
	DefaultWebPQuality = 100
)

// DefaultFFmpegArgs is the default argument template for split-video.
const DefaultFFmpegArgs = "-map 0 -c:v libx264 -preset veryfast -crf 22 -c:a aac"

var (
	interpolationChoices = []string{"nearest", "linear", "cubic", "area", "lanczos4"}
	detectorChoices      = []string{"detect-adaptive", "detect-content", "detect-threshold", "detect-hash", "detect-hist"}
)

// schema maps every legal (section, option) pair to its declaration. It is
// defined once and never mutated; all registries share it read-only.
var schema = map[string]map[string]Option{
	"backend-opencv": {
		"max-decode-attempts": {Kind: KindInt, Default: 5},
	},
	"backend-pyav": {
		"suppress-output": {Kind: KindBool, Default: false},
		"threading-mode":  {Kind: KindString, Default: "auto", Choices: []string{"none", "slice", "frame", "auto"}},
	},
	"detect-adaptive": {
		"frame-window":    {Kind: KindInt, Default: 2},
		"kernel-size":     {Kind: KindValidated, Default: mustKernelSize(-1)},
		"luma-only":       {Kind: KindBool, Default: false},
		"min-content-val": {Kind: KindValidated, Default: mustFloatRange(15.0, 0.0, 255.0)},
		// Legacy name for min-content-val, kept so older config files
		// still load. See optionAliases.
		"min-delta-hsv": {Kind: KindValidated, Default: mustFloatRange(15.0, 0.0, 255.0)},
		"min-scene-len": {Kind: KindValidated, Default: mustTimecode("0")},
		"threshold":     {Kind: KindValidated, Default: mustFloatRange(3.0, 0.0, 255.0)},
		"weights":       {Kind: KindValidated, Default: newScoreWeights(DefaultComponents)},
	},
	"detect-content": {
		"filter-mode":   {Kind: KindEnum, Default: "merge", Choices: []string{"merge", "suppress"}},
		"kernel-size":   {Kind: KindValidated, Default: mustKernelSize(-1)},
		"luma-only":     {Kind: KindBool, Default: false},
		"min-scene-len": {Kind: KindValidated, Default: mustTimecode("0")},
		"threshold":     {Kind: KindValidated, Default: mustFloatRange(27.0, 0.0, 255.0)},
		"weights":       {Kind: KindValidated, Default: newScoreWeights(DefaultComponents)},
	},
	"detect-hash": {
		"lowpass":       {Kind: KindValidated, Default: mustIntRange(2, 1, 256)},
		"min-scene-len": {Kind: KindValidated, Default: mustTimecode("0")},
		"size":          {Kind: KindValidated, Default: mustIntRange(16, 1, 256)},
		"threshold":     {Kind: KindValidated, Default: mustFloatRange(0.395, 0.0, 1.0)},
	},
	"detect-hist": {
		"bins":          {Kind: KindValidated, Default: mustIntRange(256, 1, 256)},
		"min-scene-len": {Kind: KindValidated, Default: mustTimecode("0")},
		"threshold":     {Kind: KindValidated, Default: mustFloatRange(0.05, 0.0, 1.0)},
	},
	"detect-threshold": {
		"add-last-scene": {Kind: KindBool, Default: true},
		"fade-bias":      {Kind: KindValidated, Default: mustIntRange(0, -100, 100)},
		"min-scene-len":  {Kind: KindValidated, Default: mustTimecode("0")},
		"threshold":      {Kind: KindValidated, Default: mustFloatRange(12.0, 0.0, 255.0)},
	},
	"load-scenes": {
		"start-col-name": {Kind: KindString, Default: "Start Frame"},
	},
	"export-html": {
		"filename":     {Kind: KindString, Default: "$VIDEO_NAME-Scenes.html"},
		"image-height": {Kind: KindInt, Default: 0},
		"image-width":  {Kind: KindInt, Default: 0},
		"no-images":    {Kind: KindBool, Default: false},
		"show":         {Kind: KindBool, Default: false},
	},
	"list-scenes": {
		"cut-format":     {Kind: KindEnum, Default: "timecode", Choices: []string{"frames", "timecode", "seconds"}},
		"display-cuts":   {Kind: KindBool, Default: true},
		"display-scenes": {Kind: KindBool, Default: true},
		"filename":       {Kind: KindString, Default: "$VIDEO_NAME-Scenes.csv"},
		"no-output-file": {Kind: KindBool, Default: false},
		"output":         {Kind: KindString, Default: ""},
		"quiet":          {Kind: KindBool, Default: false},
		"skip-cuts":      {Kind: KindBool, Default: false},
	},
	"global": {
		"backend":           {Kind: KindString, Default: "opencv", Choices: []string{"opencv", "pyav", "moviepy"}},
		"default-detector":  {Kind: KindString, Default: "detect-adaptive", Choices: detectorChoices},
		"downscale":         {Kind: KindInt, Default: 0},
		"downscale-method":  {Kind: KindEnum, Default: "linear", Choices: interpolationChoices},
		"drop-short-scenes": {Kind: KindBool, Default: false},
		"frame-skip":        {Kind: KindInt, Default: 0},
		"merge-last-scene":  {Kind: KindBool, Default: false},
		"min-scene-len":     {Kind: KindValidated, Default: mustTimecode("0.6s")},
		"output":            {Kind: KindString, Default: ""},
		"verbosity":         {Kind: KindString, Default: "info", Choices: []string{"debug", "info", "warning", "error", "none"}},
	},
	"save-images": {
		"compression":  {Kind: KindValidated, Default: mustIntRange(3, 0, 9)},
		"filename":     {Kind: KindString, Default: "$VIDEO_NAME-Scene-$SCENE_NUMBER-$IMAGE_NUMBER"},
		"format":       {Kind: KindString, Default: "jpeg", Choices: []string{"jpeg", "png", "webp"}},
		"frame-margin": {Kind: KindInt, Default: 1},
		"height":       {Kind: KindInt, Default: 0},
		"num-images":   {Kind: KindInt, Default: 3},
		"output":       {Kind: KindString, Default: ""},
		"quality":      {Kind: KindValidated, Default: mustIntRange(QualityPlaceholder, 0, 100)},
		"scale":        {Kind: KindFloat, Default: 1.0},
		"scale-method": {Kind: KindEnum, Default: "linear", Choices: interpolationChoices},
		"width":        {Kind: KindInt, Default: 0},
	},
	"save-qp": {
		"disable-shift": {Kind: KindBool, Default: false},
		"filename":      {Kind: KindString, Default: "$VIDEO_NAME.qp"},
		"output":        {Kind: KindString, Default: ""},
	},
	"split-video": {
		"args":         {Kind: KindString, Default: DefaultFFmpegArgs},
		"copy":         {Kind: KindBool, Default: false},
		"filename":     {Kind: KindString, Default: "$VIDEO_NAME-Scene-$SCENE_NUMBER"},
		"high-quality": {Kind: KindBool, Default: false},
		"mkvmerge":     {Kind: KindBool, Default: false},
		"output":       {Kind: KindString, Default: ""},
		"preset": {Kind: KindString, Default: "veryfast", Choices: []string{
			"ultrafast", "superfast", "veryfast", "faster", "fast",
			"medium", "slow", "slower", "veryslow",
		}},
		"quiet":       {Kind: KindBool, Default: false},
		"rate-factor": {Kind: KindValidated, Default: mustIntRange(22, 0, 100)},
	},
}

// Lookup returns the schema entry for (section, option).
func Lookup(section, option string) (Option, bool) {
	opts, ok := schema[section]
	if !ok {
		return Option{}, false
	}
	opt, ok := opts[option]
	return opt, ok
}

// HasSection reports whether section is declared in the schema.
func HasSection(section string) bool {
	_, ok := schema[section]
	return ok
}

// Sections returns all schema section names in sorted order.
func Sections() []string {
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OptionsOf returns the option names of a schema section in sorted order.
func OptionsOf(section string) []string {
	opts := schema[section]
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
