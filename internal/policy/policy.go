package policy

import "strings"

type Rules struct {
	Allow []string
	Deny  []string
}

func NewRules(whitelist, blacklist string) Rules {
	return Rules{
		Allow: ParseList(whitelist),
		Deny:  ParseList(blacklist),
	}
}

func (r Rules) Allowed(actionPath string) bool {
	return Evaluate(actionPath, r.Allow, r.Deny)
}

// Evaluate reports whether actionPath ("owner/name[/sub]") may be used.
// Entries match either the full path or the bare owner namespace. The deny
// list always wins; an empty allow list allows everything not denied.
func Evaluate(actionPath string, allow, deny []string) bool {
	if actionPath == "" || !strings.Contains(actionPath, "/") {
		return true
	}

	namespace, _, _ := strings.Cut(actionPath, "/")

	if matches(deny, actionPath, namespace) {
		return false
	}

	if len(allow) == 0 {
		return true
	}

	return matches(allow, actionPath, namespace)
}

func matches(list []string, actionPath, namespace string) bool {
	for _, item := range list {
		if item == actionPath || item == namespace {
			return true
		}
	}
	return false
}
