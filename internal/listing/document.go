// =============================================================================
// document.go - 番組表HTMLの解析（goquery）
// =============================================================================
//
// bangumi.org の番組表ページ（/epg/td）の構造:
//
//	<div id="ch_area"><ul><li><p>NHK総合1・東京</p></li>...</ul></div>
//	<div id="program_area">
//	  <ul id="program_line_1">
//	    <li s="202501152100" e="202501152200" se-id="...">
//	      <div><a href="..."><p>番組名</p></a><p class="program_detail">詳細</p></div>
//	    </li>
//	  </ul>
//	</div>
//
// 【ポイント】
//   - チャンネル番号は li の親 ul の id（program_line_<N>）の末尾から取る
//   - チャンネル名の並びは ch_area の li の順番がそのまま番号順
//
// =============================================================================
package listing

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// CSSセレクタ
const (
	channelSelector = "#ch_area ul li"
	programSelector = "div#program_area ul li"
	titleSelector   = "div a p"
	linkSelector    = "div a[href]"
	detailSelector  = "div p.program_detail"

	programLinePrefix = "program_line_"
)

// Document は解析済みの番組表ページ
type Document struct {
	Channels Channels
	Nodes    []Node
}

// ParseDocument は番組表ページのHTMLを読み込み、チャンネル一覧と番組ノードを取り出す
func ParseDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse HTML failed")
	}
	return FromSelection(doc.Selection), nil
}

// ParseHTML は文字列のHTMLを解析し、チャンネル一覧と Listing を返す
func ParseHTML(html string) (Channels, *Listing, error) {
	d, err := ParseDocument(strings.NewReader(html))
	if err != nil {
		return nil, nil, err
	}
	return d.Channels, Extract(d.Nodes), nil
}

// FromSelection は解析済みのドキュメントからチャンネルと番組ノードを集める
func FromSelection(root *goquery.Selection) *Document {
	d := &Document{}

	root.Find(channelSelector).Each(func(_ int, li *goquery.Selection) {
		name := normalizeWhitespace(li.Find("p").First().Text())
		if name == "" {
			name = normalizeWhitespace(li.Text())
		}
		d.Channels = append(d.Channels, name)
	})

	root.Find(programSelector).Each(func(_ int, li *goquery.Selection) {
		d.Nodes = append(d.Nodes, htmlNode{sel: li})
	})

	return d
}

// htmlNode は goquery の Selection を Node として扱うアダプタ
type htmlNode struct {
	sel *goquery.Selection
}

func (n htmlNode) Attr(name string) string {
	return n.sel.AttrOr(name, "")
}

// Channel は直上の親要素の id（program_line_<N>）からチャンネル番号を読む
func (n htmlNode) Channel() (int, bool) {
	id := n.sel.Parent().AttrOr("id", "")
	rest, ok := strings.CutPrefix(id, programLinePrefix)
	if !ok {
		return 0, false
	}
	ch, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return ch, true
}

// Title は最初の番組名 <p> の最初のテキストノードを返す
func (n htmlNode) Title() string {
	return firstTextNode(n.sel.Find(titleSelector).First())
}

func (n htmlNode) Link() string {
	return n.sel.Find(linkSelector).First().AttrOr("href", "")
}

func (n htmlNode) Detail() string {
	return firstTextNode(n.sel.Find(detailSelector).First())
}

// firstTextNode は要素内の最初の（空白だけでない）テキストノードを文書順で返す
//
// <p>番組名<span>[字]</span></p> のような場合は "番組名" だけを取る。
// <p><span>番組名</span></p> のように子要素の中にしか文字がない場合はそれを取る。
func firstTextNode(s *goquery.Selection) string {
	text := ""
	s.Contents().EachWithBreak(func(_ int, c *goquery.Selection) bool {
		if goquery.NodeName(c) != "#text" {
			text = firstTextNode(c)
			return text == ""
		}
		if t := strings.TrimSpace(c.Text()); t != "" {
			text = t
			return false
		}
		return true
	})
	return text
}
