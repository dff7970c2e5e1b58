package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Only-Gg/gih/models"
)

type dashboardModel struct {
	pages   []models.MemoryPage
	idx     int
	loading bool
	status  string
}

func newDashboardModel() dashboardModel {
	return dashboardModel{loading: true}
}

func (m dashboardModel) current() (models.MemoryPage, bool) {
	if len(m.pages) == 0 || m.idx < 0 || m.idx >= len(m.pages) {
		return models.MemoryPage{}, false
	}
	return m.pages[m.idx], true
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// formatCreatedAt renders a creation timestamp with Arabic month names,
// matching the rest of the interface language.
func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[int(t.Month())-1], t.Year())
}

// removePage drops the page with the given id from the list and keeps the
// cursor on a valid row.
func (m *dashboardModel) removePage(pageID string) {
	for i, page := range m.pages {
		if page.ID == pageID {
			m.pages = append(m.pages[:i], m.pages[i+1:]...)
			break
		}
	}
	if m.idx >= len(m.pages) {
		m.idx = len(m.pages) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func memoryCounts(page models.MemoryPage) (images, videos int) {
	for _, memory := range page.Memories {
		if memory.Type == models.MemoryVideo {
			videos++
		} else {
			images++
		}
	}
	return images, videos
}

func (m dashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("جاري التحميل...\n")
		return renderPage("صفحات الذكريات", strings.TrimRight(b.String(), "\n"), dashboardHotKeys)
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	if len(m.pages) == 0 {
		b.WriteString("لا توجد صفحات بعد. اضغط n لإنشاء أول صفحة.\n")
		return renderPage("صفحات الذكريات", strings.TrimRight(b.String(), "\n"), dashboardHotKeys)
	}

	b.WriteString("المعرف       │ العنوان                  │ تاريخ الإنشاء      │ الوسائط\n")
	b.WriteString("─────────────┼──────────────────────────┼────────────────────┼────────────\n")
	for i, page := range m.pages {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		images, videos := memoryCounts(page)
		b.WriteString(fmt.Sprintf(
			"%s %-11s│ %-24s │ %-18s │ %d صور, %d فيديو\n",
			cursor,
			fitText(page.ID, 11),
			fitText(page.Title, 24),
			formatCreatedAt(page.CreatedAt),
			images,
			videos,
		))
	}

	return renderPage("صفحات الذكريات", strings.TrimRight(b.String(), "\n"), dashboardHotKeys)
}

const dashboardHotKeys = "n: جديدة │ e: تعديل │ v: معاينة │ c: نسخ الرابط │ d: حذف │ r: تحديث │ l: خروج من الحساب"
