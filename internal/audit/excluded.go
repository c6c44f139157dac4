package audit

// excludedClasses are tokens the converter deliberately leaves alone.
// They fall into four buckets: the semantic vocabulary the converter
// itself writes, structural markers consumed during conversion,
// grammar/pronunciation/usage group wrappers with no mapping of their
// own, and spans that carry nothing but punctuation.
var excludedClasses = map[string]bool{
	// Output vocabulary written by the converter.
	"phrases_block":      true,
	"phrases_title":      true,
	"phrasalverbs_block": true,
	"phrasalverbs_title": true,
	"origin_block":       true,
	"origin_title":       true,
	"derivatives_block":  true,
	"derivatives_title":  true,
	"usage_block":        true,
	"usage_title":        true,
	"note_block":         true,

	// Structural markers consumed by the passes or stripped at cleanup.
	"note":             true,
	"x_xoLblBlk":       true,
	"etym":             true,
	"t_derivatives":    true,
	"t_phrasalVerbs":   true,
	"t_phrases":        true,
	"subEntryBlock":    true,
	"tg_subEntryBlock": true,
	"subEntry":         true,
	"se1":              true,
	"x_xd0":            true,
	"x_xdt":            true,
	"tg_msDict":        true,
	"hg":               true,
	"x_xh0":            true,
	"x_blk":            true,
	"lbl":              true,

	// Grammar, pronunciation and usage group wrappers.
	"la":     true, // Latin
	"date":   true,
	"df":     true, // definition
	"tg_df":  true,
	"dg":     true,
	"eg":     true, // example
	"frac":   true, // fraction
	"fg":     true, // phrase group
	"ge":     true, // regional variety
	"reg":    true, // register
	"hw":     true, // headword
	"pr":     true, // pronunciation
	"prx":    true,
	"t_IPA":  true,
	"ph":     true,
	"tg_ph":  true,
	"infg":   true, // inflected form
	"posg":   true, // part of speech
	"pos":    true,
	"tg_pos": true,
	"q":      true,
	"tg_q":   true,
	"gp":     true,
	"sg":     true,
	"sj":     true,
	"tx":     true,
	"vg":     true, // verb group
	"trans":  true, // translation

	// Punctuation-only helper spans.
	"tg_eg":   true,
	"tg_etym": true,
	"tg_vg":   true,
	"tg_fg":   true,
	"tg_infg": true,
	"tg_gg":   true,
}
