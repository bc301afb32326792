// 指示: miu200521358
package vrm0

import (
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrmcommon"
)

// PresetName はBlendShapeGroupの定義済み表情名を表す。
type PresetName string

const (
	PresetNameA         PresetName = "a"
	PresetNameAngry     PresetName = "angry"
	PresetNameBlink     PresetName = "blink"
	PresetNameBlinkL    PresetName = "blink_l"
	PresetNameBlinkR    PresetName = "blink_r"
	PresetNameE         PresetName = "e"
	PresetNameFun       PresetName = "fun"
	PresetNameI         PresetName = "i"
	PresetNameJoy       PresetName = "joy"
	PresetNameLookdown  PresetName = "lookdown"
	PresetNameLookleft  PresetName = "lookleft"
	PresetNameLookright PresetName = "lookright"
	PresetNameLookup    PresetName = "lookup"
	PresetNameNeutral   PresetName = "neutral"
	PresetNameO         PresetName = "o"
	PresetNameSorrow    PresetName = "sorrow"
	PresetNameU         PresetName = "u"
	PresetNameUnknown   PresetName = "unknown"
)

// PresetNames は定義済み表情名の一覧。
var PresetNames = []PresetName{
	PresetNameA, PresetNameAngry, PresetNameBlink, PresetNameBlinkL, PresetNameBlinkR,
	PresetNameE, PresetNameFun, PresetNameI, PresetNameJoy, PresetNameLookdown,
	PresetNameLookleft, PresetNameLookright, PresetNameLookup, PresetNameNeutral,
	PresetNameO, PresetNameSorrow, PresetNameU, PresetNameUnknown,
}

// UnmarshalText は未知の表情名をPresetNameUnknownとして読み込む。
// 元の文字列は保持しないため、再エンコードすると "unknown" として書き出される。
// 表情の識別にはBlendShapeGroup.Nameを使う。
func (p *PresetName) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("presetName", string(text), PresetNames)
	if err != nil {
		logVrm0Debug("未知のpresetNameをunknownとして扱います: %q", string(text))
		value = PresetNameUnknown
	}
	*p = value
	return nil
}

// LookAtTypeName は視線制御の方式を表す。
type LookAtTypeName string

const (
	LookAtTypeNameBone       LookAtTypeName = "Bone"
	LookAtTypeNameBlendShape LookAtTypeName = "BlendShape"
)

// UnmarshalText は既知の視線制御方式のみを受け付ける。
func (l *LookAtTypeName) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("lookAtTypeName", string(text),
		[]LookAtTypeName{LookAtTypeNameBone, LookAtTypeNameBlendShape})
	if err != nil {
		return err
	}
	*l = value
	return nil
}

// Bone はヒューマノイドボーン名を表す。
type Bone string

const (
	BoneHips                    Bone = "hips"
	BoneLeftUpperLeg            Bone = "leftUpperLeg"
	BoneRightUpperLeg           Bone = "rightUpperLeg"
	BoneLeftLowerLeg            Bone = "leftLowerLeg"
	BoneRightLowerLeg           Bone = "rightLowerLeg"
	BoneLeftFoot                Bone = "leftFoot"
	BoneRightFoot               Bone = "rightFoot"
	BoneSpine                   Bone = "spine"
	BoneChest                   Bone = "chest"
	BoneNeck                    Bone = "neck"
	BoneHead                    Bone = "head"
	BoneLeftShoulder            Bone = "leftShoulder"
	BoneRightShoulder           Bone = "rightShoulder"
	BoneLeftUpperArm            Bone = "leftUpperArm"
	BoneRightUpperArm           Bone = "rightUpperArm"
	BoneLeftLowerArm            Bone = "leftLowerArm"
	BoneRightLowerArm           Bone = "rightLowerArm"
	BoneLeftHand                Bone = "leftHand"
	BoneRightHand               Bone = "rightHand"
	BoneLeftToes                Bone = "leftToes"
	BoneRightToes               Bone = "rightToes"
	BoneLeftEye                 Bone = "leftEye"
	BoneRightEye                Bone = "rightEye"
	BoneJaw                     Bone = "jaw"
	BoneLeftThumbProximal       Bone = "leftThumbProximal"
	BoneLeftThumbIntermediate   Bone = "leftThumbIntermediate"
	BoneLeftThumbDistal         Bone = "leftThumbDistal"
	BoneLeftIndexProximal       Bone = "leftIndexProximal"
	BoneLeftIndexIntermediate   Bone = "leftIndexIntermediate"
	BoneLeftIndexDistal         Bone = "leftIndexDistal"
	BoneLeftMiddleProximal      Bone = "leftMiddleProximal"
	BoneLeftMiddleIntermediate  Bone = "leftMiddleIntermediate"
	BoneLeftMiddleDistal        Bone = "leftMiddleDistal"
	BoneLeftRingProximal        Bone = "leftRingProximal"
	BoneLeftRingIntermediate    Bone = "leftRingIntermediate"
	BoneLeftRingDistal          Bone = "leftRingDistal"
	BoneLeftLittleProximal      Bone = "leftLittleProximal"
	BoneLeftLittleIntermediate  Bone = "leftLittleIntermediate"
	BoneLeftLittleDistal        Bone = "leftLittleDistal"
	BoneRightThumbProximal      Bone = "rightThumbProximal"
	BoneRightThumbIntermediate  Bone = "rightThumbIntermediate"
	BoneRightThumbDistal        Bone = "rightThumbDistal"
	BoneRightIndexProximal      Bone = "rightIndexProximal"
	BoneRightIndexIntermediate  Bone = "rightIndexIntermediate"
	BoneRightIndexDistal        Bone = "rightIndexDistal"
	BoneRightMiddleProximal     Bone = "rightMiddleProximal"
	BoneRightMiddleIntermediate Bone = "rightMiddleIntermediate"
	BoneRightMiddleDistal       Bone = "rightMiddleDistal"
	BoneRightRingProximal       Bone = "rightRingProximal"
	BoneRightRingIntermediate   Bone = "rightRingIntermediate"
	BoneRightRingDistal         Bone = "rightRingDistal"
	BoneRightLittleProximal     Bone = "rightLittleProximal"
	BoneRightLittleIntermediate Bone = "rightLittleIntermediate"
	BoneRightLittleDistal       Bone = "rightLittleDistal"
	BoneUpperChest              Bone = "upperChest"
)

// Bones はヒューマノイドボーン名の一覧。
var Bones = []Bone{
	BoneHips, BoneLeftUpperLeg, BoneRightUpperLeg, BoneLeftLowerLeg, BoneRightLowerLeg,
	BoneLeftFoot, BoneRightFoot, BoneSpine, BoneChest, BoneNeck, BoneHead,
	BoneLeftShoulder, BoneRightShoulder, BoneLeftUpperArm, BoneRightUpperArm,
	BoneLeftLowerArm, BoneRightLowerArm, BoneLeftHand, BoneRightHand,
	BoneLeftToes, BoneRightToes, BoneLeftEye, BoneRightEye, BoneJaw,
	BoneLeftThumbProximal, BoneLeftThumbIntermediate, BoneLeftThumbDistal,
	BoneLeftIndexProximal, BoneLeftIndexIntermediate, BoneLeftIndexDistal,
	BoneLeftMiddleProximal, BoneLeftMiddleIntermediate, BoneLeftMiddleDistal,
	BoneLeftRingProximal, BoneLeftRingIntermediate, BoneLeftRingDistal,
	BoneLeftLittleProximal, BoneLeftLittleIntermediate, BoneLeftLittleDistal,
	BoneRightThumbProximal, BoneRightThumbIntermediate, BoneRightThumbDistal,
	BoneRightIndexProximal, BoneRightIndexIntermediate, BoneRightIndexDistal,
	BoneRightMiddleProximal, BoneRightMiddleIntermediate, BoneRightMiddleDistal,
	BoneRightRingProximal, BoneRightRingIntermediate, BoneRightRingDistal,
	BoneRightLittleProximal, BoneRightLittleIntermediate, BoneRightLittleDistal,
	BoneUpperChest,
}

// UnmarshalText は既知のボーン名のみを受け付ける。
func (b *Bone) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("bone", string(text), Bones)
	if err != nil {
		return err
	}
	*b = value
	return nil
}

// AllowedUserName はアバターとして演じることを許可する範囲を表す。
type AllowedUserName string

const (
	AllowedUserNameOnlyAuthor               AllowedUserName = "OnlyAuthor"
	AllowedUserNameExplicitlyLicensedPerson AllowedUserName = "ExplicitlyLicensedPerson"
	AllowedUserNameEveryone                 AllowedUserName = "Everyone"
)

// UnmarshalText は既知の許可範囲のみを受け付ける。
func (a *AllowedUserName) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("allowedUserName", string(text), []AllowedUserName{
		AllowedUserNameOnlyAuthor, AllowedUserNameExplicitlyLicensedPerson, AllowedUserNameEveryone,
	})
	if err != nil {
		return err
	}
	*a = value
	return nil
}

// UssageName は利用可否を表す。綴りはVRM 0.0のキー名に合わせている。
type UssageName string

const (
	UssageNameDisallow UssageName = "Disallow"
	UssageNameAllow    UssageName = "Allow"
)

// UnmarshalText はAllowとDisallowのみを受け付ける。
func (u *UssageName) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("ussageName", string(text), []UssageName{UssageNameDisallow, UssageNameAllow})
	if err != nil {
		return err
	}
	*u = value
	return nil
}

// LicenseName はライセンス種別を表す。
type LicenseName string

const (
	LicenseNameRedistributionProhibited LicenseName = "Redistribution_Prohibited"
	LicenseNameCC0                      LicenseName = "CC0"
	LicenseNameCCBY                     LicenseName = "CC_BY"
	LicenseNameCCBYNC                   LicenseName = "CC_BY_NC"
	LicenseNameCCBYSA                   LicenseName = "CC_BY_SA"
	LicenseNameCCBYNCSA                 LicenseName = "CC_BY_NC_SA"
	LicenseNameCCBYND                   LicenseName = "CC_BY_ND"
	LicenseNameCCBYNCND                 LicenseName = "CC_BY_NC_ND"
	LicenseNameOther                    LicenseName = "Other"
)

// UnmarshalText は既知のライセンス種別のみを受け付ける。
func (l *LicenseName) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("licenseName", string(text), []LicenseName{
		LicenseNameRedistributionProhibited, LicenseNameCC0, LicenseNameCCBY, LicenseNameCCBYNC,
		LicenseNameCCBYSA, LicenseNameCCBYNCSA, LicenseNameCCBYND, LicenseNameCCBYNCND, LicenseNameOther,
	})
	if err != nil {
		return err
	}
	*l = value
	return nil
}
