package models

type EquipmentCondition string

const (
	ConditionGood    EquipmentCondition = "Good"
	ConditionWornOut EquipmentCondition = "Worn Out"
	ConditionPoor    EquipmentCondition = "Poor"
	ConditionLost    EquipmentCondition = "Lost"
	ConditionDamaged EquipmentCondition = "Damaged"
)

func (c EquipmentCondition) Valid() bool {
	switch c {
	case ConditionGood, ConditionWornOut, ConditionPoor, ConditionLost, ConditionDamaged:
		return true
	}
	return false
}

type EquipmentModel struct {
	Id        int                `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string             `json:"name" gorm:"type:varchar(50);not null"`
	Condition EquipmentCondition `json:"condition" gorm:"type:varchar(20);default:'Good';not null"`
	Available bool               `json:"available" gorm:"type:boolean;default:true;not null"`
}
