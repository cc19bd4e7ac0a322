package nlp

import (
	"regexp"
	"strings"

	"github.com/bgdnvk/archlens/internal/catalog"
	"github.com/bgdnvk/archlens/internal/model"
)

const (
	confPatternMatch = 0.85
	confStyleKeyword = 0.75
	confUseCase      = 0.8
	confConstraint   = 0.85
	confBestPractice = 0.9
	confAntiPattern  = 0.85
)

// styleKeywords are architecture styles recognized independently of the
// pattern library.
var styleKeywords = []string{
	"serverless",
	"microservices",
	"event-driven",
	"monolithic",
	"multi-tier",
	"hybrid",
	"data lake",
	"real-time",
}

type useCasePattern struct {
	name string
	re   *regexp.Regexp
}

type constraintPattern struct {
	conType     string
	description string
	re          *regexp.Regexp
}

type practicePattern struct {
	name           string
	category       string
	isBestPractice bool
	re             *regexp.Regexp
}

var useCasePatterns = []useCasePattern{
	{"web-application", regexp.MustCompile(`web app|website|web portal|web platform|online (?:store|shop|service)`)},
	{"mobile-backend", regexp.MustCompile(`mobile app|mobile backend|ios|android|app backend`)},
	{"data-processing", regexp.MustCompile(`data (?:processing|pipeline|ingestion|transformation)|\betl\b|process (?:data|files|records)`)},
	{"real-time-analytics", regexp.MustCompile(`real.?time analytics|streaming analytics|live (?:dashboard|metrics)|analyze.*in real.?time`)},
	{"machine-learning", regexp.MustCompile(`machine learning|\bml\b|train(?:ing)? (?:a )?model|predict(?:ion|ive)|recommendation engine`)},
	{"iot", regexp.MustCompile(`\biot\b|internet of things|sensor data|device telemetry|connected devices`)},
	{"content-delivery", regexp.MustCompile(`content delivery|serve (?:static|media) (?:content|files)|video streaming|media distribution`)},
	{"batch-processing", regexp.MustCompile(`batch (?:processing|jobs?)|nightly (?:jobs?|runs?)|scheduled (?:jobs?|tasks?)|bulk processing`)},
}

var constraintPatterns = []constraintPattern{
	{"budget", "limited budget for infrastructure spend", regexp.MustCompile(`budget|cost limit|under \$|spend(?:ing)? (?:cap|limit)|tight(?:er)? budget`)},
	{"timeline", "fixed delivery timeline", regexp.MustCompile(`deadline|timeline|within \d+ (?:days?|weeks?|months?)|launch(?:ing)? (?:by|in)|time.?to.?market`)},
	{"compliance", "regulatory compliance obligations", regexp.MustCompile(`complian(?:ce|t)|\bgdpr\b|\bhipaa\b|\bpci.?dss\b|\bsoc ?2\b|regulat(?:ory|ion)`)},
	{"region", "workload restricted to specific regions", regexp.MustCompile(`(?:specific|single|eu|us|european|data) region|data residency|region(?:al)? restriction|must (?:stay|remain) in`)},
	{"technology", "existing technology commitments", regexp.MustCompile(`must use|existing (?:stack|system|database|infrastructure)|already (?:use|have|run)|legacy`)},
	{"team", "limited team size or operational capacity", regexp.MustCompile(`small team|limited (?:team|staff|resources)|no (?:dedicated )?ops|single developer`)},
	{"usability", "prioritize user experience and ease of use", regexp.MustCompile(`user experience|ease of use|easy to use|user.?friendly|simple interface`)},
}

var practicePatterns = []practicePattern{
	{"multi-az-deployment", "availability", true, regexp.MustCompile(`multi.?az|multiple availability zones|across (?:availability )?zones`)},
	{"encryption-at-rest", "security", true, regexp.MustCompile(`encrypt(?:ed|ion)(?: at rest| in transit)?|\bkms\b|\btls\b`)},
	{"auto-scaling", "scalability", true, regexp.MustCompile(`auto.?scal(?:e|ing)|scale (?:automatically|on demand|with load)`)},
	{"least-privilege", "security", true, regexp.MustCompile(`least privilege|minimal permissions|role.?based access|fine.?grained (?:access|permissions)`)},
	{"single-point-of-failure", "availability", false, regexp.MustCompile(`single point of failure|\bspof\b|single (?:server|instance|node) (?:for|running) (?:everything|all)`)},
	{"hardcoded-credentials", "security", false, regexp.MustCompile(`hardcoded? (?:credentials?|secrets?|passwords?|keys?)|credentials? in (?:code|config)`)},
}

// Recognizer matches text against the pattern library and fixed intent
// vocabularies. The pattern-library rule is deliberately loose: a pattern is
// a candidate when its name appears in the text or when any single word of
// its description does. Downstream confidence handling assumes this
// behavior, so it stays as is.
type Recognizer struct {
	catalog *catalog.Catalog
}

// NewRecognizer returns a recognizer bound to the given catalog.
func NewRecognizer(c *catalog.Catalog) *Recognizer {
	return &Recognizer{catalog: c}
}

// Recognize extracts pattern candidates, use cases, constraints, and
// practice signals from the text.
func (r *Recognizer) Recognize(text string) model.Intents {
	lower := strings.ToLower(text)

	return model.Intents{
		Patterns:    r.recognizePatterns(lower),
		UseCases:    recognizeUseCases(lower),
		Constraints: recognizeConstraints(lower),
		Practices:   recognizePractices(lower),
	}
}

func (r *Recognizer) recognizePatterns(lower string) []model.PatternMatch {
	matches := []model.PatternMatch{}

	for _, entry := range r.catalog.Patterns() {
		hit := strings.Contains(lower, strings.ToLower(entry.Name))
		if !hit {
			for _, word := range strings.Fields(strings.ToLower(entry.Description)) {
				if strings.Contains(lower, word) {
					hit = true
					break
				}
			}
		}
		if hit {
			matches = append(matches, model.PatternMatch{
				Name:       entry.Name,
				Category:   entry.Category,
				Confidence: confPatternMatch,
			})
		}
	}

	for _, kw := range styleKeywords {
		if strings.Contains(lower, kw) {
			matches = append(matches, model.PatternMatch{
				Name:       kw,
				Category:   "architecture-style",
				Confidence: confStyleKeyword,
			})
		}
	}

	return matches
}

func recognizeUseCases(lower string) []model.UseCaseMatch {
	matches := []model.UseCaseMatch{}
	for _, uc := range useCasePatterns {
		if uc.re.MatchString(lower) {
			matches = append(matches, model.UseCaseMatch{
				Name:       uc.name,
				Confidence: confUseCase,
			})
		}
	}
	return matches
}

func recognizeConstraints(lower string) []model.ConstraintMatch {
	matches := []model.ConstraintMatch{}
	for _, cp := range constraintPatterns {
		if cp.re.MatchString(lower) {
			matches = append(matches, model.ConstraintMatch{
				Type:        cp.conType,
				Description: cp.description,
				Confidence:  confConstraint,
			})
		}
	}
	return matches
}

func recognizePractices(lower string) []model.PracticeSignal {
	signals := []model.PracticeSignal{}
	for _, pp := range practicePatterns {
		if pp.re.MatchString(lower) {
			confidence := confAntiPattern
			if pp.isBestPractice {
				confidence = confBestPractice
			}
			signals = append(signals, model.PracticeSignal{
				Name:           pp.name,
				Category:       pp.category,
				IsBestPractice: pp.isBestPractice,
				Confidence:     confidence,
			})
		}
	}
	return signals
}
