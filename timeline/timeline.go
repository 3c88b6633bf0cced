// Package timeline derives the delivery-lifecycle event sequence for one
// line item. Structured mode reads the known timestamp fields; log mode
// falls back to parsing the free-text shipment log the backend appends to.
package timeline

import (
	"regexp"
	"strings"
	"time"

	"github.com/blindtreasure/orderview/constant"
	"github.com/blindtreasure/orderview/model"
)

// timeNA marks a log line that carried no parseable timestamp.
const timeNA = "N/A"

var logLinePattern = regexp.MustCompile(`^\[(.*?)\] (.*)$`)

// defaultTerms translates the English tokens the backend writes into its
// shipment logs. Unknown tokens pass through untouched.
var defaultTerms = map[string]string{
	"Created":            "Đã tạo đơn hàng",
	"Status changed":     "Thay đổi trạng thái",
	"Available":          "Sẵn sàng",
	"Delivering":         "Đang giao hàng",
	"Shipment requested": "Yêu cầu vận chuyển",
	"InventoryItem":      "Sản phẩm",
}

// Builder turns a record into an ordered event sequence. The term table is
// injectable so the display language can be swapped in tests.
type Builder struct {
	terms []termRule
}

type termRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// NewBuilder returns a Builder with the default term table.
func NewBuilder() *Builder {
	return NewBuilderWithTerms(defaultTerms)
}

// NewBuilderWithTerms returns a Builder using the given log-token
// substitution table. Matching is case-insensitive, as the backend is not
// consistent about log casing.
func NewBuilderWithTerms(terms map[string]string) *Builder {
	b := &Builder{}
	for token, replacement := range terms {
		b.terms = append(b.terms, termRule{
			pattern:     regexp.MustCompile("(?i)" + regexp.QuoteMeta(token)),
			replacement: replacement,
		})
	}
	return b
}

// BuildDetail derives the timeline for an order detail. Structured mode is
// preferred whenever the detail carries a shipment or the parent carries a
// completion timestamp; otherwise the detail's log text is parsed. With no
// derivable events the result is empty, never nil-dereferencing and never an
// error.
func (b *Builder) BuildDetail(d *model.OrderDetail, parent *model.Order) []model.TimelineEvent {
	if d == nil {
		return nil
	}
	var shipment *model.Shipment
	if len(d.Shipments) > 0 {
		shipment = &d.Shipments[0]
	}
	if shipment != nil || (parent != nil && parent.CompletedAt != nil) {
		return b.structured(parent, shipment, d.Status)
	}
	return b.fromLogs(d.Logs)
}

// BuildInventory derives the timeline for an inventory item, which carries at
// most a single shipment.
func (b *Builder) BuildInventory(i *model.InventoryItem) []model.TimelineEvent {
	if i == nil {
		return nil
	}
	if i.Shipment != nil {
		status := constant.OrderStatusDelivering
		if i.Status == constant.InventoryStatusDelivered {
			status = constant.OrderStatusDelivered
		}
		return b.structured(nil, i.Shipment, status)
	}
	return b.fromLogs(i.Logs)
}

// structured emits the fixed event sequence created → picked-up → in-transit
// → delivered. An event is emitted only when its backing timestamp exists;
// the delivering step is marked incomplete until the status has reached it,
// and the delivered step appears only for a terminally delivered status.
func (b *Builder) structured(parent *model.Order, shipment *model.Shipment, status constant.OrderStatus) []model.TimelineEvent {
	events := make([]model.TimelineEvent, 0, 4)

	if parent != nil && parent.CompletedAt != nil {
		events = append(events, event(*parent.CompletedAt, "Đơn hàng đã được đặt thành công", true, false))
	}

	if shipment != nil {
		if at := firstTime(shipment.PickedUpAt, shipment.EstimatedPickupTime); at != nil {
			events = append(events, event(*at, "Đã lấy hàng và bắt đầu vận chuyển", true, false))
		}
		if shipment.EstimatedDelivery != nil {
			events = append(events, event(*shipment.EstimatedDelivery, "Đang giao hàng đến địa chỉ nhận", statusReachedDelivering(status), false))
		}
		if isDeliveredStatus(status) && shipment.ShippedAt != nil {
			events = append(events, event(*shipment.ShippedAt, "Đã giao hàng thành công", true, true))
		}
	}

	return events
}

// fromLogs parses the backend's free-text shipment log. Each line of the form
// "[<timestamp>] <text>" becomes one event; other non-empty lines become an
// untimed event carrying the translated raw text.
func (b *Builder) fromLogs(logs string) []model.TimelineEvent {
	if logs == "" {
		return []model.TimelineEvent{}
	}
	events := make([]model.TimelineEvent, 0)
	for _, line := range splitLines(logs) {
		m := logLinePattern.FindStringSubmatch(line)
		if m == nil {
			events = append(events, model.TimelineEvent{
				TimeLabel: timeNA,
				Label:     b.translate(line),
				Completed: true,
			})
			continue
		}
		ev := model.TimelineEvent{
			Label:     b.translate(m[2]),
			Completed: true,
		}
		if at, err := parseLogTime(m[1]); err == nil {
			ev.At = at
			ev.TimeLabel = at.Format("02/01/2006")
		} else {
			ev.TimeLabel = timeNA
		}
		events = append(events, ev)
	}
	return events
}

// ProgressStage maps a detail status to the three-step tracking progress bar:
// 1 = shipped, 2 = delivering, 3 = delivered.
func ProgressStage(status constant.OrderStatus) int {
	switch {
	case isDeliveredStatus(status):
		return 3
	case status == constant.OrderStatusDelivering || status == constant.OrderStatusPartiallyDelivering:
		return 2
	default:
		return 1
	}
}

func (b *Builder) translate(text string) string {
	for _, rule := range b.terms {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}

func event(at time.Time, label string, completed, final bool) model.TimelineEvent {
	return model.TimelineEvent{
		At:        at,
		TimeLabel: at.Format("02/01/2006 15:04"),
		Label:     label,
		Completed: completed,
		Final:     final,
	}
}

func firstTime(ts ...*time.Time) *time.Time {
	for _, t := range ts {
		if t != nil {
			return t
		}
	}
	return nil
}

func statusReachedDelivering(status constant.OrderStatus) bool {
	return status == constant.OrderStatusDelivering ||
		status == constant.OrderStatusPartiallyDelivering ||
		isDeliveredStatus(status)
}

func isDeliveredStatus(status constant.OrderStatus) bool {
	return status == constant.OrderStatusDelivered ||
		status == constant.OrderStatusPartiallyDelivered ||
		status == constant.OrderStatusCompleted
}

func parseLogTime(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	var err error
	var t time.Time
	for _, layout := range layouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
