package types

// CharacterID identifies one of the scripted characters. Cath is the player.
type CharacterID int

const (
	CharacterCath CharacterID = iota
	CharacterAnna
	CharacterAugust
	CharacterCond1
	CharacterCond2
	CharacterHeadWait
	CharacterWaiter1
	CharacterWaiter2
	CharacterCook
	CharacterTrainM
	CharacterTatiana
	CharacterVassili
	CharacterAlexei
	CharacterAbbot
	CharacterMilos
	CharacterVesna
	CharacterIvo
	CharacterSalko
	CharacterKronos
	CharacterKahina
	CharacterFrancois
	CharacterMadame
	CharacterMonsieur
	CharacterRebecca
	CharacterSophie
	CharacterMahmud
	CharacterYasmin
	CharacterHadija
	CharacterAlouan
	CharacterPolice
	CharacterMax
	CharacterMaster
	CharacterClerk
	CharacterTableA
	CharacterTableB
	CharacterTableC
	CharacterTableD
	CharacterTableE
	CharacterTableF
	CharacterMitchell

	CharacterCount
)

// Car is a train car index.
type Car uint8

const (
	CarNone Car = iota
	CarBaggageRear
	CarKronos
	CarGreenSleeping
	CarRedSleeping
	CarRestaurant
	CarBaggage
	CarCoalTender
	CarLocomotive
	CarVestibule
)

// Location is the coarse placement of a character inside a car.
type Location uint8

const (
	LocationOutsideCompartment Location = iota
	LocationInsideCompartment
	LocationOutsideTrain
)

// Direction is the facing or walking direction of a character.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionCycle
	DirectionSequence
	DirectionSwitch
)

// Clothes selects a character's outfit.
type Clothes uint8

const (
	ClothesDefault Clothes = iota
	Clothes1
	Clothes2
	Clothes3
)

// ObjectID indexes the shared object (door/hotspot) table.
type ObjectID int

// Objects referenced by the ported character tables.
const (
	ObjectCompartment1  ObjectID = 1
	ObjectOutsideTyler  ObjectID = 9
	ObjectCompartmentF  ObjectID = 37
	ObjectCompartmentG  ObjectID = 38
	ObjectCompartmentH  ObjectID = 39
	ObjectHandleInsideF ObjectID = 45
	ObjectHandleInsideG ObjectID = 46
	ObjectOutsideAnnaF  ObjectID = 53
	ObjectRestaurantCar ObjectID = 64
)

// ObjectLocation is the open/closed/locked state of an object.
type ObjectLocation uint8

const (
	ObjectLocationNone ObjectLocation = iota
	ObjectLocation1
	ObjectLocation2
	ObjectLocation3
)

// Cursor is a cursor style index. 255 keeps the current one.
type Cursor uint8

const (
	CursorNormal    Cursor = 0
	CursorHandKnock Cursor = 9
	CursorKnock     Cursor = 10
	CursorTalk      Cursor = 14
	CursorKeep      Cursor = 255
)

// ItemID indexes Cath's inventory.
type ItemID int

const (
	ItemNone          ItemID = 0
	ItemPassengerList ItemID = 6
	ItemKey           ItemID = 15
	ItemFirebird      ItemID = 18
)

// EventID identifies a scripted cinematic (NIS) event.
type EventID int

const (
	EventAnnaBaggageArgument           EventID = 32
	EventAnnaBaggagePart2              EventID = 33
	EventAnnaKilled                    EventID = 49
	EventMilosTylerCompartmentVisit    EventID = 98
	EventMilosTylerCompartmentBedVisit EventID = 99
	EventMilosTylerCompartment         EventID = 100
	EventMilosTylerCompartmentBed      EventID = 101
	EventMilosTylerCompartmentDefeat   EventID = 102
	EventMilosCorpseFloor              EventID = 103
	EventCathVesnaRestaurantKilled     EventID = 167
	EventCathVesnaTrainTopFight        EventID = 173
	EventCathVesnaTrainTopKilled       EventID = 174
	EventCathVesnaTrainTopWin          EventID = 175
	EventCathIvoFight                  EventID = 176
)

// GlobalID indexes the game-progress globals table.
type GlobalID int

const (
	GlobalJacket                     GlobalID = 1
	GlobalCorpseMovedFromFloor       GlobalID = 2
	GlobalReadLetterInAugustSuitcase GlobalID = 3
	GlobalCharacterSearchingForCath  GlobalID = 5
	GlobalChapter                    GlobalID = 11
	GlobalIsDayTime                  GlobalID = 14
	GlobalTrainIsRunning             GlobalID = 20
	GlobalAnnaIsInBaggageCar         GlobalID = 21
	GlobalOverheardVesnaAndMilos     GlobalID = 38
	GlobalMetMilos                   GlobalID = 51
)

// GameTime is the coarse game time unit. It never decreases except on load
// or an explicit time jump.
type GameTime uint32

// Fixed points on the game timeline.
const (
	TimeStartGame GameTime = 1061100
	TimeChapter1  GameTime = 1062000
	Time1071000   GameTime = 1071000
	Time1089000   GameTime = 1089000
	Time1093500   GameTime = 1093500
	Time1404000   GameTime = 1404000
	Time2250000   GameTime = 2250000
	Time2259000   GameTime = 2259000
	Time2266200   GameTime = 2266200
	Time2428200   GameTime = 2428200
	Time15803100  GameTime = 15803100
	TimeNever     GameTime = 0x7FFFFFFF
)
