// 指示: miu200521358
// Package messages はCLI表示に使うメッセージを提供する。
package messages

// メッセージ一覧。
const (
	HelpUsageTitle = "使い方"
	HelpUsage      = "mu_vrmspec [-in] 入力.vrm [-json] [-roundtrip] [-save] [-export] [-out 出力先 | -outdir 出力ディレクトリ]"

	LabelName                 = "名前"
	LabelVersion              = "VRMバージョン"
	LabelProfile              = "プロファイル"
	LabelGenerator            = "出力ツール"
	LabelTitle                = "タイトル"
	LabelModelVersion         = "モデルバージョン"
	LabelAuthors              = "作者"
	LabelLicense              = "ライセンス"
	LabelExtensions           = "拡張"
	LabelNodes                = "node数"
	LabelMaterials            = "マテリアル数(MToon)"
	LabelHumanBones           = "ヒューマノイドボーン数"
	LabelMissingRequiredBones = "未割当の必須ボーン"
	LabelExpressions          = "表情数(定義済み)"
	LabelSprings              = "揺れもの数(joint)"
	LabelColliders            = "コライダー数(グループ)"
	LabelWarnings             = "警告"

	MessageInputRequired = "入力VRMファイルを指定してください (-in)"
	MessageLoadFailed    = "VRM読み込みに失敗しました"
	MessageInspectFailed = "VRM検査に失敗しました"

	LogLoadStart        = "[mu_vrmspec] 読み込み開始: %s"
	LogRoundTripSuccess = "[mu_vrmspec] 再読込検証成功"
	LogSaveSuccess      = "[mu_vrmspec] 保存完了: %s"
	LogExportSuccess    = "[mu_vrmspec] 補助出力完了: %s"
)
