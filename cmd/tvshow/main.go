// =============================================================================
// main.go - tvshow のエントリーポイント
// =============================================================================
//
// 端末で日本のテレビ番組表を表示するCLIツールです。
//
//	tvshow                  # 東京の番組表を12時間分、グリッドで表示
//	tvshow -a 大阪 -t 3     # 大阪の番組表を3時間分
//	tvshow -m list -v       # 時刻順の一覧で、番組詳細とリンクも表示
//	tvshow areas            # 指定できるエリア名の一覧
//
// =============================================================================
package main

import (
	"context"

	"github.com/spf13/cobra"

	"tvshow/cmd/tvshow/cmds"
)

func main() {
	cobra.CheckErr(cmds.NewRootCLI().ExecuteContext(context.Background()))
}
