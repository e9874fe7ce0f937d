package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html><body>
<div id="contents">
  <div id="ch_area">
    <ul>
      <li><p>NHK総合1・東京</p></li>
      <li><p> NHKEテレ1
        東京 </p></li>
      <li>日テレ1</li>
    </ul>
  </div>
  <div id="program_area">
    <ul id="program_line_1">
      <li s="202501152100" e="202501152200" se-id="program101234">
        <div><a href="https://bangumi.org/tv_events/101"><p>ニュース7<span>[字]</span></p></a>
        <p class="program_detail">今日のニュース</p></div>
      </li>
      <li s="202501152100" e="202501152230" se-id="program999999">
        <div><a href="https://bangumi.org/tv_events/999"><p>重複した枠</p></a></div>
      </li>
      <li s="202501152200" e="202501152300" se-id="program101235">
        <div><a><p></p></a></div>
      </li>
    </ul>
    <ul id="program_line_2">
      <li s="202501152130" e="202501152200" se-id="program201234">
        <div><a href="/tv_events/201"><p>🈑きょうの料理</p></a></div>
      </li>
    </ul>
    <ul id="something_else">
      <li s="202501152130" e="202501152200" se-id="program301234">
        <div><a href="/tv_events/301"><p>チャンネル不明</p></a></div>
      </li>
    </ul>
  </div>
</div>
</body></html>`

func TestParseHTML(t *testing.T) {
	channels, l, err := ParseHTML(samplePage)
	require.NoError(t, err)

	assert.Equal(t, Channels{"NHK総合1・東京", "NHKEテレ1 東京", "日テレ1"}, channels)

	programs := l.Programs()
	require.Len(t, programs, 2)

	assert.Equal(t, Program{
		ID:          "101234",
		Channel:     1,
		Name:        "ニュース7",
		Description: "今日のニュース",
		Link:        "https://bangumi.org/tv_events/101",
		Start:       "202501152100",
		End:         "202501152200",
	}, programs[0])

	assert.Equal(t, 2, programs[1].Channel)
	assert.Equal(t, "🈑きょうの料理", programs[1].Name)
	assert.Equal(t, "/tv_events/201", programs[1].Link)
	assert.Empty(t, programs[1].Description)
}

func TestParseHTMLEmptyPage(t *testing.T) {
	channels, l, err := ParseHTML("<html><body><p>メンテナンス中</p></body></html>")
	require.NoError(t, err)
	assert.Empty(t, channels)
	assert.Equal(t, 0, l.Len())
}

func TestParseHTMLNestedTitle(t *testing.T) {
	page := `<div id="program_area">
<ul id="program_line_1">
  <li s="202501152100" e="202501152200" se-id="program101234">
    <div><a href="/x"><p><span>ニュース7</span></p></a>
    <p class="program_detail"> <b>今日の</b>ニュース</p></div>
  </li>
  <li s="202501152200" e="202501152300" se-id="program101235">
    <div><a href="/y"><p> <span> </span><em><span>クローズアップ</span></em>現代</p></a></div>
  </li>
</ul>
</div>`

	_, l, err := ParseHTML(page)
	require.NoError(t, err)

	programs := l.Programs()
	require.Len(t, programs, 2)
	assert.Equal(t, "ニュース7", programs[0].Name)
	assert.Equal(t, "今日の", programs[0].Description)
	assert.Equal(t, "クローズアップ", programs[1].Name)
}
