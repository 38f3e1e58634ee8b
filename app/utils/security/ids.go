package security

import (
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

type ThreatLevel int

const (
	ThreatLevelLow ThreatLevel = iota
	ThreatLevelMedium
	ThreatLevelHigh
	ThreatLevelCritical
)

func (l ThreatLevel) String() string {
	switch l {
	case ThreatLevelMedium:
		return "medium"
	case ThreatLevelHigh:
		return "high"
	case ThreatLevelCritical:
		return "critical"
	default:
		return "low"
	}
}

const (
	activityTTL        = time.Hour
	activityCleanupGap = 10 * time.Minute
)

var (
	traversalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\.\./`),
		regexp.MustCompile(`\.\.\\`),
		regexp.MustCompile(`(?i)%2e%2e(%2f|%5c)`),
		regexp.MustCompile(`(?i)%252e%252e%252f`),
	}

	scannerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)sqlmap`),
		regexp.MustCompile(`(?i)nikto`),
		regexp.MustCompile(`(?i)nmap`),
		regexp.MustCompile(`(?i)masscan`),
		regexp.MustCompile(`(?i)dirbuster`),
	}

	// opaqueParams carry annotation keys that are compared byte for byte and
	// never resolved against the filesystem.
	opaqueParams = map[string]bool{"uri": true}

	probePaths = []string{
		"/.env",
		"/.git",
		"/wp-admin",
		"/wp-login.php",
		"/phpmyadmin",
	}
)

// IntrusionDetectionSystem flags request lines that look like scans and keeps
// a per-IP tally. Only the path, query and user agent are inspected. Bodies
// are free annotation text and may legitimately quote attack strings.
type IntrusionDetectionSystem struct {
	logger        *slog.Logger
	suspiciousIPs map[string]*SuspiciousActivity
	mutex         sync.RWMutex
	done          chan struct{}
	stopOnce      sync.Once
}

type SuspiciousActivity struct {
	IP             string
	Attempts       int
	LastAttempt    time.Time
	AttackPatterns []string
	ThreatLevel    ThreatLevel
}

// NewIDS starts the detector. Call Stop to end its cleanup goroutine.
func NewIDS(logger *slog.Logger) *IntrusionDetectionSystem {
	ids := &IntrusionDetectionSystem{
		logger:        logger.With("component", "ids"),
		suspiciousIPs: make(map[string]*SuspiciousActivity),
		done:          make(chan struct{}),
	}

	go ids.cleanupSuspiciousIPs()
	return ids
}

// AnalyzeRequest reports whether the request may pass. A rejected request is
// added to the tally of ip.
func (ids *IntrusionDetectionSystem) AnalyzeRequest(ip, userAgent, path, rawQuery string) bool {
	var patterns []string

	if detectPathTraversal(path) || detectQueryTraversal(rawQuery) {
		patterns = append(patterns, "PATH_TRAVERSAL")
	}
	if detectProbe(path) {
		patterns = append(patterns, "PATH_PROBE")
	}
	if detectScanner(userAgent) {
		patterns = append(patterns, "SUSPICIOUS_UA")
	}

	if len(patterns) == 0 {
		return true
	}

	ids.recordSuspiciousActivity(ip, patterns)
	return false
}

// detectPathTraversal checks the raw and the decoded form of s.
func detectPathTraversal(s string) bool {
	candidates := []string{s}
	if decoded, err := url.PathUnescape(s); err == nil && decoded != s {
		candidates = append(candidates, decoded)
	}

	for _, candidate := range candidates {
		for _, pattern := range traversalPatterns {
			if pattern.MatchString(candidate) {
				return true
			}
		}
	}
	return false
}

// detectQueryTraversal checks every query parameter except the opaque ones.
// An unparsable query is checked as a whole.
func detectQueryTraversal(rawQuery string) bool {
	if rawQuery == "" {
		return false
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return detectPathTraversal(rawQuery)
	}

	for key, vals := range values {
		if detectPathTraversal(key) {
			return true
		}
		if opaqueParams[key] {
			continue
		}
		for _, v := range vals {
			if detectPathTraversal(v) {
				return true
			}
		}
	}
	return false
}

func detectProbe(path string) bool {
	lower := strings.ToLower(path)
	for _, probe := range probePaths {
		if strings.HasPrefix(lower, probe) {
			return true
		}
	}
	return false
}

func detectScanner(userAgent string) bool {
	for _, pattern := range scannerPatterns {
		if pattern.MatchString(userAgent) {
			return true
		}
	}
	return false
}

func (ids *IntrusionDetectionSystem) recordSuspiciousActivity(ip string, patterns []string) {
	ids.mutex.Lock()
	defer ids.mutex.Unlock()

	activity, exists := ids.suspiciousIPs[ip]
	if !exists {
		activity = &SuspiciousActivity{IP: ip, ThreatLevel: ThreatLevelLow}
		ids.suspiciousIPs[ip] = activity
	}

	activity.Attempts++
	activity.LastAttempt = time.Now()
	activity.AttackPatterns = appendUnique(activity.AttackPatterns, patterns...)

	switch {
	case activity.Attempts > 50:
		activity.ThreatLevel = ThreatLevelCritical
	case activity.Attempts > 20:
		activity.ThreatLevel = ThreatLevelHigh
	case activity.Attempts > 10:
		activity.ThreatLevel = ThreatLevelMedium
	}

	ids.logger.Warn("Suspicious request rejected",
		"ip", activity.IP,
		"attempts", activity.Attempts,
		"threat_level", activity.ThreatLevel.String(),
		"patterns", strings.Join(activity.AttackPatterns, ","))
}

func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range list {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			list = append(list, v)
		}
	}
	return list
}

// Stop ends the cleanup goroutine.
func (ids *IntrusionDetectionSystem) Stop() {
	ids.stopOnce.Do(func() { close(ids.done) })
}

func (ids *IntrusionDetectionSystem) cleanupSuspiciousIPs() {
	ticker := time.NewTicker(activityCleanupGap)
	defer ticker.Stop()

	for {
		select {
		case <-ids.done:
			return
		case <-ticker.C:
			ids.mutex.Lock()
			for ip, activity := range ids.suspiciousIPs {
				if time.Since(activity.LastAttempt) > activityTTL {
					delete(ids.suspiciousIPs, ip)
				}
			}
			ids.mutex.Unlock()
		}
	}
}

func (ids *IntrusionDetectionSystem) GetThreatLevel(ip string) ThreatLevel {
	ids.mutex.RLock()
	defer ids.mutex.RUnlock()

	activity, exists := ids.suspiciousIPs[ip]
	if !exists {
		return ThreatLevelLow
	}
	return activity.ThreatLevel
}

// IsBlocked reports whether ip has reached ThreatLevelHigh.
func (ids *IntrusionDetectionSystem) IsBlocked(ip string) bool {
	return ids.GetThreatLevel(ip) >= ThreatLevelHigh
}
