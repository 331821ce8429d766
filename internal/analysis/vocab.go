package analysis

// Fixed vocabularies shared by the extractors. All tables are read-only after
// package init; matching is case-insensitive substring matching throughout,
// so several entries are stems ("iterat", "recurs") that cover a word family.

// sectionNames is the controlled vocabulary of header labels, tried in order.
// The first name whose term matches a header line wins.
var sectionNames = []string{
	"abstract",
	"introduction",
	"background",
	"related work",
	"motivation",
	"methodology",
	"method",
	"approach",
	"algorithm",
	"implementation",
	"experiments",
	"experiment",
	"evaluation",
	"results",
	"discussion",
	"conclusion",
	"references",
	"acknowledgments",
	"appendix",
}

// SectionUnknown labels content that precedes the first detected header.
const SectionUnknown = "unknown"

// algorithmTerms feed the sentence-level algorithm confidence score at a
// weight of 0.2 per matched term.
var algorithmTerms = []string{
	"algorithm",
	"procedure",
	"recurs",
	"iterat",
	"travers",
	"sorting",
	"searching",
	"optimiz",
	"comput",
	"dynamic programming",
	"greedy",
	"heuristic",
	"divide and conquer",
	"backtrack",
	"prune",
	"memoiz",
	"graph",
	"tree",
	"heap",
	"queue",
	"stack",
	"hash",
	"partition",
	"merge",
	"binary search",
	"shortest path",
	"spanning",
	"convergence",
	"initialization",
	"termination",
}

// codeIndicatorTerms feed the same score at a weight of 0.15 per match.
var codeIndicatorTerms = []string{
	"pseudocode",
	"pseudo-code",
	"function",
	"subroutine",
	"input:",
	"output:",
	"while",
	"for each",
	"foreach",
	"return",
	"repeat",
	"until",
	"begin",
	"end if",
	"end for",
	"end while",
	"invariant",
	"assert",
}

// mathTerms feed the same score at a weight of 0.1 per match.
var mathTerms = []string{
	"theorem",
	"lemma",
	"corollary",
	"proposition",
	"proof",
	"equation",
	"formula",
	"complexity",
	"o(",
	"logarithmic",
	"polynomial",
	"exponential",
	"linear time",
	"constant time",
	"upper bound",
	"lower bound",
	"asymptotic",
	"probability",
	"matrix",
	"vector",
}

// proceduralMarkers signal step-by-step discourse, 0.1 per match. They are
// not carried into block keyword sets.
var proceduralMarkers = []string{
	"first",
	"then",
	"next",
	"finally",
	"step",
	"subsequently",
}

// controlFlowTerms feed the paragraph-level code confidence at 0.15 per match.
var controlFlowTerms = []string{
	"if",
	"else",
	"while",
	"for",
	"do",
	"repeat",
	"until",
}

// boilerplateMarkers disqualify a line from being the paper title. Academic
// PDFs interleave license grants, affiliations, and arXiv stamps before the
// true title; any of these marks a line as front-matter noise.
var boilerplateMarkers = []string{
	"permission to make",
	"provided that copies",
	"attribution",
	"copyright",
	"all rights reserved",
	"creative commons",
	"license",
	"arxiv",
	"@",
	".edu",
	".com",
	".org",
	"http",
	"university",
	"institute",
	"department",
	"laboratory",
	"school of",
	"college of",
	"correspondence",
	"et al",
	"proceedings of",
	"journal of",
	"conference on",
	"preprint",
	"vol.",
	"pp.",
	"doi",
	"issn",
	"isbn",
}

// category pairs a classification label with its indicator keywords.
// Declaration order breaks score ties, so the slice order is load-bearing.
type category struct {
	name  string
	terms []string
}

var categories = []category{
	{"algorithm", []string{"sorting", "searching", "optimization", "complexity", "efficient"}},
	{"data-structure", []string{"tree", "graph", "heap", "hash table", "linked list"}},
	{"machine-learning", []string{"neural", "training", "model", "learning rate", "gradient"}},
	{"theoretical", []string{"theorem", "proof", "lemma", "bound", "conjecture"}},
	{"systems", []string{"distributed", "concurrent", "throughput", "latency", "protocol"}},
}

// stopwords filters non-topical tokens out of keyword extraction. The list
// leans on function words plus the scaffolding vocabulary of academic prose.
var stopwords = map[string]struct{}{
	"that": {}, "this": {}, "these": {}, "those": {}, "with": {}, "from": {},
	"have": {}, "been": {}, "were": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "which": {}, "where": {}, "when": {}, "while": {}, "there": {},
	"their": {}, "them": {}, "they": {}, "than": {}, "then": {}, "thus": {},
	"each": {}, "also": {}, "such": {}, "both": {}, "into": {}, "over": {},
	"under": {}, "between": {}, "through": {}, "about": {}, "after": {},
	"before": {}, "other": {}, "more": {}, "most": {}, "some": {}, "only": {},
	"very": {}, "what": {}, "does": {}, "using": {}, "used": {}, "uses": {},
	"based": {}, "given": {}, "shown": {}, "show": {}, "shows": {}, "here": {},
	"paper": {}, "section": {}, "figure": {}, "table": {}, "equation": {},
	"however": {}, "therefore": {}, "moreover": {}, "furthermore": {},
	"respectively": {}, "following": {}, "proposed": {}, "present": {},
	"presents": {}, "since": {}, "because": {}, "many": {}, "much": {},
	"well": {}, "work": {}, "case": {}, "note": {}, "first": {}, "second": {},
	"third": {}, "finally": {}, "example": {}, "define": {}, "defined": {},
	"consider": {}, "denote": {}, "denotes": {}, "follows": {},
}
