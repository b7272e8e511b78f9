// Package validation runs declarative per-field rule lists against a
// request before its handler executes. Rules are evaluated in declaration
// order and only the first failure is reported, as a 422 with the message
// shape "<Message>: [<location> / <field.path>] (<offending value>)".
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"pizza-backend/internal/httperr"
)

// Location names the part of the request a field lives in.
type Location string

const (
	Body   Location = "body"
	Params Location = "params"
)

// Value is a field as found (or not found) in the request.
type Value struct {
	Raw     interface{}
	Present bool
}

// String returns the raw value as a string when it is one.
func (v Value) String() (string, bool) {
	s, ok := v.Raw.(string)
	return s, ok
}

// Check examines one field value and returns a short failure message and
// false when the value is rejected.
type Check func(Value) (string, bool)

// Rule binds an ordered list of checks to a field location and path.
// Paths are dot-addressable for nested body fields.
type Rule struct {
	Location Location
	Path     string
	Checks   []Check
}

// BodyField declares a rule for a (possibly nested) body field.
func BodyField(path string, checks ...Check) Rule {
	return Rule{Location: Body, Path: path, Checks: checks}
}

// ParamField declares a rule for a route parameter.
func ParamField(name string, checks ...Check) Rule {
	return Rule{Location: Params, Path: name, Checks: checks}
}

// Validate evaluates the rules in order and aborts with a 422 on the
// first failing check. The request body is restored afterwards so the
// handler can bind it again. An unreadable or non-JSON body simply leaves
// every body field absent.
func Validate(rules ...Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := readBody(c, rules)

		for _, rule := range rules {
			value := lookup(c, body, rule)
			for _, check := range rule.Checks {
				message, ok := check(value)
				if ok {
					continue
				}
				httperr.Abort(c, httperr.UnprocessableEntity(failureMessage(rule, value, message)))
				return
			}
		}
		c.Next()
	}
}

func failureMessage(rule Rule, value Value, message string) string {
	display := "undefined"
	if value.Present {
		display = fmt.Sprintf("%v", value.Raw)
	}
	// Never echo credentials back to the client or into logs.
	if isPasswordPath(rule.Path) {
		display = ""
	}
	return fmt.Sprintf("%s: [%s / %s] (%s)", message, rule.Location, rule.Path, display)
}

func isPasswordPath(path string) bool {
	segments := strings.Split(path, ".")
	last := segments[len(segments)-1]
	return last == "password" || last == "oldPassword"
}

func readBody(c *gin.Context, rules []Rule) map[string]interface{} {
	needsBody := false
	for _, rule := range rules {
		if rule.Location == Body {
			needsBody = true
			break
		}
	}
	if !needsBody || c.Request.Body == nil {
		return nil
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	return body
}

func lookup(c *gin.Context, body map[string]interface{}, rule Rule) Value {
	if rule.Location == Params {
		raw, ok := c.Params.Get(rule.Path)
		return Value{Raw: raw, Present: ok}
	}

	var current interface{} = body
	for _, segment := range strings.Split(rule.Path, ".") {
		object, ok := current.(map[string]interface{})
		if !ok {
			return Value{}
		}
		current, ok = object[segment]
		if !ok {
			return Value{}
		}
	}
	return Value{Raw: current, Present: true}
}
