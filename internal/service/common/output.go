package common

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

// GenerateFilteredTitle はフィルタ条件に基づいてタイトルを生成
func GenerateFilteredTitle(resourceType string, conditions ...string) string {
	// 空文字列を除外
	var validConditions []string
	for _, cond := range conditions {
		if cond != "" {
			validConditions = append(validConditions, cond)
		}
	}

	if len(validConditions) == 0 {
		return fmt.Sprintf("%s一覧", resourceType)
	}

	return fmt.Sprintf("%s%s一覧", strings.Join(validConditions, ""), resourceType)
}

// FormatListError はリスト取得エラーを統一フォーマットで返す
func FormatListError(service string, err error) error {
	return fmt.Errorf(ListErrorFormat, ErrorIcon, service, err)
}

// PrintStatusList はステータス付きリストを表示
func PrintStatusList(title string, items []ListItem, resourceName string) {
	fmt.Printf("%s: (全%d件)\n", title, len(items))

	if len(items) == 0 {
		fmt.Printf("%sが見つかりませんでした\n", resourceName)
		return
	}

	for i, item := range items {
		if item.Status != "" {
			fmt.Printf("  %3d. %s [%s]\n", i+1, item.Name, item.Status)
		} else {
			fmt.Printf("  %3d. %s\n", i+1, item.Name)
		}
	}
}

// PrintTable はテーブル形式でデータを標準出力に表示する
func PrintTable(title string, columns []TableColumn, data [][]string) {
	FprintTable(os.Stdout, title, columns, data)
}

// FprintTable はテーブル形式でデータを w に書き出す
// 列幅は表示幅で計算するため、全角文字を含むヘッダーでも揃う
func FprintTable(w io.Writer, title string, columns []TableColumn, data [][]string) {
	if title != "" {
		fmt.Fprintf(w, "\n%s:\n", title)
	}

	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = max(col.Width, runewidth.StringWidth(col.Header))
	}
	for _, row := range data {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], runewidth.StringWidth(cell))
			}
		}
	}

	// ヘッダー表示
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = runewidth.FillRight(col.Header, colWidths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))

	// 区切り線
	for i := range columns {
		cells[i] = strings.Repeat("-", colWidths[i])
	}
	fmt.Fprintln(w, strings.Join(cells, " "))

	// データ行
	for _, row := range data {
		for i := range columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = runewidth.FillRight(cell, colWidths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}
}

// DisplayList は汎用的なリスト表示関数
func DisplayList[T any](
	items []T,
	title string,
	toTableData func([]T) ([]TableColumn, [][]string),
	opts *DisplayOptions,
) {
	if opts == nil {
		opts = &DisplayOptions{}
	}
	emptyMessage := opts.EmptyMessage
	if emptyMessage == "" {
		emptyMessage = "リソースが見つかりませんでした"
	}

	if len(opts.FilterMessages) > 0 {
		title = GenerateFilteredTitle(title, opts.FilterMessages...)
	}

	if len(items) == 0 {
		fmt.Println(emptyMessage)
		return
	}

	columns, data := toTableData(items)
	PrintTable(title, columns, data)

	if opts.ShowCount {
		fmt.Printf("\n合計: %d件\n", len(items))
	}
}
