// 指示: miu200521358
package vrm1

import (
	"github.com/miu200521358/mu_vrmspec/pkg/domain/vrm/vrmcommon"
)

// ExpressionPresetName は定義済み表情名を表す。
type ExpressionPresetName string

const (
	ExpressionPresetNameAa         ExpressionPresetName = "aa"
	ExpressionPresetNameAngry      ExpressionPresetName = "angry"
	ExpressionPresetNameBlink      ExpressionPresetName = "blink"
	ExpressionPresetNameBlinkLeft  ExpressionPresetName = "blinkLeft"
	ExpressionPresetNameBlinkRight ExpressionPresetName = "blinkRight"
	ExpressionPresetNameEe         ExpressionPresetName = "ee"
	ExpressionPresetNameHappy      ExpressionPresetName = "happy"
	ExpressionPresetNameIh         ExpressionPresetName = "ih"
	ExpressionPresetNameLookDown   ExpressionPresetName = "lookDown"
	ExpressionPresetNameLookLeft   ExpressionPresetName = "lookLeft"
	ExpressionPresetNameLookRight  ExpressionPresetName = "lookRight"
	ExpressionPresetNameLookUp     ExpressionPresetName = "lookUp"
	ExpressionPresetNameNeutral    ExpressionPresetName = "neutral"
	ExpressionPresetNameOh         ExpressionPresetName = "oh"
	ExpressionPresetNameOu         ExpressionPresetName = "ou"
	ExpressionPresetNameRelaxed    ExpressionPresetName = "relaxed"
	ExpressionPresetNameSad        ExpressionPresetName = "sad"
	ExpressionPresetNameSurprised  ExpressionPresetName = "surprised"
)

// ExpressionPresetNames は定義済み表情名の一覧。
var ExpressionPresetNames = []ExpressionPresetName{
	ExpressionPresetNameAa, ExpressionPresetNameAngry, ExpressionPresetNameBlink,
	ExpressionPresetNameBlinkLeft, ExpressionPresetNameBlinkRight, ExpressionPresetNameEe,
	ExpressionPresetNameHappy, ExpressionPresetNameIh, ExpressionPresetNameLookDown,
	ExpressionPresetNameLookLeft, ExpressionPresetNameLookRight, ExpressionPresetNameLookUp,
	ExpressionPresetNameNeutral, ExpressionPresetNameOh, ExpressionPresetNameOu,
	ExpressionPresetNameRelaxed, ExpressionPresetNameSad, ExpressionPresetNameSurprised,
}

// UnmarshalText は既知の表情名のみを受け付ける。マップのキーにも適用される。
func (e *ExpressionPresetName) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("expressions.preset", string(text), ExpressionPresetNames)
	if err != nil {
		return err
	}
	*e = value
	return nil
}

// HumanBoneName はヒューマノイドボーン名を表す。
type HumanBoneName string

const (
	HumanBoneNameHips                    HumanBoneName = "hips"
	HumanBoneNameSpine                   HumanBoneName = "spine"
	HumanBoneNameChest                   HumanBoneName = "chest"
	HumanBoneNameUpperChest              HumanBoneName = "upperChest"
	HumanBoneNameNeck                    HumanBoneName = "neck"
	HumanBoneNameHead                    HumanBoneName = "head"
	HumanBoneNameLeftEye                 HumanBoneName = "leftEye"
	HumanBoneNameRightEye                HumanBoneName = "rightEye"
	HumanBoneNameJaw                     HumanBoneName = "jaw"
	HumanBoneNameLeftUpperLeg            HumanBoneName = "leftUpperLeg"
	HumanBoneNameLeftLowerLeg            HumanBoneName = "leftLowerLeg"
	HumanBoneNameLeftFoot                HumanBoneName = "leftFoot"
	HumanBoneNameLeftToes                HumanBoneName = "leftToes"
	HumanBoneNameRightUpperLeg           HumanBoneName = "rightUpperLeg"
	HumanBoneNameRightLowerLeg           HumanBoneName = "rightLowerLeg"
	HumanBoneNameRightFoot               HumanBoneName = "rightFoot"
	HumanBoneNameRightToes               HumanBoneName = "rightToes"
	HumanBoneNameLeftShoulder            HumanBoneName = "leftShoulder"
	HumanBoneNameLeftUpperArm            HumanBoneName = "leftUpperArm"
	HumanBoneNameLeftLowerArm            HumanBoneName = "leftLowerArm"
	HumanBoneNameLeftHand                HumanBoneName = "leftHand"
	HumanBoneNameRightShoulder           HumanBoneName = "rightShoulder"
	HumanBoneNameRightUpperArm           HumanBoneName = "rightUpperArm"
	HumanBoneNameRightLowerArm           HumanBoneName = "rightLowerArm"
	HumanBoneNameRightHand               HumanBoneName = "rightHand"
	HumanBoneNameLeftThumbMetacarpal     HumanBoneName = "leftThumbMetacarpal"
	HumanBoneNameLeftThumbProximal       HumanBoneName = "leftThumbProximal"
	HumanBoneNameLeftThumbDistal         HumanBoneName = "leftThumbDistal"
	HumanBoneNameLeftIndexProximal       HumanBoneName = "leftIndexProximal"
	HumanBoneNameLeftIndexIntermediate   HumanBoneName = "leftIndexIntermediate"
	HumanBoneNameLeftIndexDistal         HumanBoneName = "leftIndexDistal"
	HumanBoneNameLeftMiddleProximal      HumanBoneName = "leftMiddleProximal"
	HumanBoneNameLeftMiddleIntermediate  HumanBoneName = "leftMiddleIntermediate"
	HumanBoneNameLeftMiddleDistal        HumanBoneName = "leftMiddleDistal"
	HumanBoneNameLeftRingProximal        HumanBoneName = "leftRingProximal"
	HumanBoneNameLeftRingIntermediate    HumanBoneName = "leftRingIntermediate"
	HumanBoneNameLeftRingDistal          HumanBoneName = "leftRingDistal"
	HumanBoneNameLeftLittleProximal      HumanBoneName = "leftLittleProximal"
	HumanBoneNameLeftLittleIntermediate  HumanBoneName = "leftLittleIntermediate"
	HumanBoneNameLeftLittleDistal        HumanBoneName = "leftLittleDistal"
	HumanBoneNameRightThumbMetacarpal    HumanBoneName = "rightThumbMetacarpal"
	HumanBoneNameRightThumbProximal      HumanBoneName = "rightThumbProximal"
	HumanBoneNameRightThumbDistal        HumanBoneName = "rightThumbDistal"
	HumanBoneNameRightIndexProximal      HumanBoneName = "rightIndexProximal"
	HumanBoneNameRightIndexIntermediate  HumanBoneName = "rightIndexIntermediate"
	HumanBoneNameRightIndexDistal        HumanBoneName = "rightIndexDistal"
	HumanBoneNameRightMiddleProximal     HumanBoneName = "rightMiddleProximal"
	HumanBoneNameRightMiddleIntermediate HumanBoneName = "rightMiddleIntermediate"
	HumanBoneNameRightMiddleDistal       HumanBoneName = "rightMiddleDistal"
	HumanBoneNameRightRingProximal       HumanBoneName = "rightRingProximal"
	HumanBoneNameRightRingIntermediate   HumanBoneName = "rightRingIntermediate"
	HumanBoneNameRightRingDistal         HumanBoneName = "rightRingDistal"
	HumanBoneNameRightLittleProximal     HumanBoneName = "rightLittleProximal"
	HumanBoneNameRightLittleIntermediate HumanBoneName = "rightLittleIntermediate"
	HumanBoneNameRightLittleDistal       HumanBoneName = "rightLittleDistal"
)

// HumanBoneNames はヒューマノイドボーン名の一覧。
var HumanBoneNames = []HumanBoneName{
	HumanBoneNameHips, HumanBoneNameSpine, HumanBoneNameChest, HumanBoneNameUpperChest,
	HumanBoneNameNeck, HumanBoneNameHead, HumanBoneNameLeftEye, HumanBoneNameRightEye, HumanBoneNameJaw,
	HumanBoneNameLeftUpperLeg, HumanBoneNameLeftLowerLeg, HumanBoneNameLeftFoot, HumanBoneNameLeftToes,
	HumanBoneNameRightUpperLeg, HumanBoneNameRightLowerLeg, HumanBoneNameRightFoot, HumanBoneNameRightToes,
	HumanBoneNameLeftShoulder, HumanBoneNameLeftUpperArm, HumanBoneNameLeftLowerArm, HumanBoneNameLeftHand,
	HumanBoneNameRightShoulder, HumanBoneNameRightUpperArm, HumanBoneNameRightLowerArm, HumanBoneNameRightHand,
	HumanBoneNameLeftThumbMetacarpal, HumanBoneNameLeftThumbProximal, HumanBoneNameLeftThumbDistal,
	HumanBoneNameLeftIndexProximal, HumanBoneNameLeftIndexIntermediate, HumanBoneNameLeftIndexDistal,
	HumanBoneNameLeftMiddleProximal, HumanBoneNameLeftMiddleIntermediate, HumanBoneNameLeftMiddleDistal,
	HumanBoneNameLeftRingProximal, HumanBoneNameLeftRingIntermediate, HumanBoneNameLeftRingDistal,
	HumanBoneNameLeftLittleProximal, HumanBoneNameLeftLittleIntermediate, HumanBoneNameLeftLittleDistal,
	HumanBoneNameRightThumbMetacarpal, HumanBoneNameRightThumbProximal, HumanBoneNameRightThumbDistal,
	HumanBoneNameRightIndexProximal, HumanBoneNameRightIndexIntermediate, HumanBoneNameRightIndexDistal,
	HumanBoneNameRightMiddleProximal, HumanBoneNameRightMiddleIntermediate, HumanBoneNameRightMiddleDistal,
	HumanBoneNameRightRingProximal, HumanBoneNameRightRingIntermediate, HumanBoneNameRightRingDistal,
	HumanBoneNameRightLittleProximal, HumanBoneNameRightLittleIntermediate, HumanBoneNameRightLittleDistal,
}

// UnmarshalText は既知のボーン名のみを受け付ける。
func (h *HumanBoneName) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("humanoid.humanBones", string(text), HumanBoneNames)
	if err != nil {
		return err
	}
	*h = value
	return nil
}

// MaterialColorType はマテリアルカラーバインドの対象プロパティを表す。
type MaterialColorType string

const (
	MaterialColorTypeColor         MaterialColorType = "color"
	MaterialColorTypeEmissionColor MaterialColorType = "emissionColor"
	MaterialColorTypeMatcapColor   MaterialColorType = "matcapColor"
	MaterialColorTypeOutlineColor  MaterialColorType = "outlineColor"
	MaterialColorTypeRimColor      MaterialColorType = "rimColor"
	MaterialColorTypeShadeColor    MaterialColorType = "shadeColor"
)

// UnmarshalText は既知の対象プロパティのみを受け付ける。
func (m *MaterialColorType) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("materialColorBind.type", string(text), []MaterialColorType{
		MaterialColorTypeColor, MaterialColorTypeEmissionColor, MaterialColorTypeMatcapColor,
		MaterialColorTypeOutlineColor, MaterialColorTypeRimColor, MaterialColorTypeShadeColor,
	})
	if err != nil {
		return err
	}
	*m = value
	return nil
}

// ExpressionOverrideType は表情が他の表情グループを上書きする方法を表す。
type ExpressionOverrideType string

const (
	ExpressionOverrideTypeNone  ExpressionOverrideType = "none"
	ExpressionOverrideTypeBlock ExpressionOverrideType = "block"
	ExpressionOverrideTypeBlend ExpressionOverrideType = "blend"
)

// UnmarshalText は既知の上書き方法のみを受け付ける。
func (e *ExpressionOverrideType) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("expression.override", string(text), []ExpressionOverrideType{
		ExpressionOverrideTypeNone, ExpressionOverrideTypeBlock, ExpressionOverrideTypeBlend,
	})
	if err != nil {
		return err
	}
	*e = value
	return nil
}

// FirstPersonType はメッシュをどのカメラに描画するかを表す。
type FirstPersonType string

const (
	FirstPersonTypeAuto            FirstPersonType = "auto"
	FirstPersonTypeBoth            FirstPersonType = "both"
	FirstPersonTypeFirstPersonOnly FirstPersonType = "firstPersonOnly"
	FirstPersonTypeThirdPersonOnly FirstPersonType = "thirdPersonOnly"
)

// UnmarshalText は既知の描画種別のみを受け付ける。
func (f *FirstPersonType) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("meshAnnotation.type", string(text), []FirstPersonType{
		FirstPersonTypeAuto, FirstPersonTypeBoth, FirstPersonTypeFirstPersonOnly, FirstPersonTypeThirdPersonOnly,
	})
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// LookAtType は視線をボーン回転と表情ウェイトのどちらで制御するかを表す。
type LookAtType string

const (
	LookAtTypeBone       LookAtType = "bone"
	LookAtTypeExpression LookAtType = "expression"
)

// UnmarshalText は既知の視線制御方式のみを受け付ける。
func (l *LookAtType) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("lookAt.type", string(text), []LookAtType{LookAtTypeBone, LookAtTypeExpression})
	if err != nil {
		return err
	}
	*l = value
	return nil
}

// AvatarPermissionType はアバターとして演じることを許可する範囲を表す。
type AvatarPermissionType string

const (
	AvatarPermissionTypeOnlyAuthor                   AvatarPermissionType = "onlyAuthor"
	AvatarPermissionTypeOnlySeparatelyLicensedPerson AvatarPermissionType = "onlySeparatelyLicensedPerson"
	AvatarPermissionTypeEveryone                     AvatarPermissionType = "everyone"
)

// UnmarshalText は既知の許可範囲のみを受け付ける。
func (a *AvatarPermissionType) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("meta.avatarPermission", string(text), []AvatarPermissionType{
		AvatarPermissionTypeOnlyAuthor, AvatarPermissionTypeOnlySeparatelyLicensedPerson, AvatarPermissionTypeEveryone,
	})
	if err != nil {
		return err
	}
	*a = value
	return nil
}

// CommercialUsageType は商用利用の許可範囲を表す。
type CommercialUsageType string

const (
	CommercialUsageTypePersonalNonProfit CommercialUsageType = "personalNonProfit"
	CommercialUsageTypePersonalProfit    CommercialUsageType = "personalProfit"
	CommercialUsageTypeCorporation       CommercialUsageType = "corporation"
)

// UnmarshalText は既知の商用利用区分のみを受け付ける。
func (c *CommercialUsageType) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("meta.commercialUsage", string(text), []CommercialUsageType{
		CommercialUsageTypePersonalNonProfit, CommercialUsageTypePersonalProfit, CommercialUsageTypeCorporation,
	})
	if err != nil {
		return err
	}
	*c = value
	return nil
}

// CreditNotationType はクレジット表記の要否を表す。
type CreditNotationType string

const (
	CreditNotationTypeRequired    CreditNotationType = "required"
	CreditNotationTypeUnnecessary CreditNotationType = "unnecessary"
)

// UnmarshalText は既知のクレジット表記区分のみを受け付ける。
func (c *CreditNotationType) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("meta.creditNotation", string(text), []CreditNotationType{
		CreditNotationTypeRequired, CreditNotationTypeUnnecessary,
	})
	if err != nil {
		return err
	}
	*c = value
	return nil
}

// ModificationType は改変と再配布の許可範囲を表す。
type ModificationType string

const (
	ModificationTypeProhibited                      ModificationType = "prohibited"
	ModificationTypeAllowModification               ModificationType = "allowModification"
	ModificationTypeAllowModificationRedistribution ModificationType = "allowModificationRedistribution"
)

// UnmarshalText は既知の改変区分のみを受け付ける。
func (m *ModificationType) UnmarshalText(text []byte) error {
	value, err := vrmcommon.ParseEnum("meta.modification", string(text), []ModificationType{
		ModificationTypeProhibited, ModificationTypeAllowModification, ModificationTypeAllowModificationRedistribution,
	})
	if err != nil {
		return err
	}
	*m = value
	return nil
}
