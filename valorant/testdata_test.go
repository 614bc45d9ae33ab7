package valorant

const (
	jettID     = "add6443a-41bd-e414-f6ad-e58d267f4e95"
	sageID     = "569fdd95-4d10-43ab-ca70-79becc718b46"
	phoenixID  = "eb93336a-449b-9c1b-0a54-a891f7921d69"
	duelistID  = "dbe8757e-9e92-4ed4-b39f-9dfc589691d4"
	sentinelID = "5fc02f99-4091-4486-a531-98459a3e95e9"
	ascentID   = "7eaecc1b-4337-bbf6-6ab9-04b8f06b3319"
	bindID     = "2c9d57ec-4431-9c5e-2939-8f9ef6dd5cba"
)

func testAgents() []*Agent {
	duelist := &Role{UUID: duelistID, DisplayName: "Duelist"}
	sentinel := &Role{UUID: sentinelID, DisplayName: "Sentinel"}

	return []*Agent{
		{UUID: jettID, DisplayName: "Jett", Role: duelist, IsPlayableCharacter: true},
		{UUID: sageID, DisplayName: "Sage", Role: sentinel, IsPlayableCharacter: true},
		{UUID: phoenixID, DisplayName: "Phoenix", Role: duelist, IsPlayableCharacter: true},
	}
}

func testMaps() []*Map {
	return []*Map{
		{UUID: ascentID, DisplayName: "Ascent"},
		{UUID: bindID, DisplayName: "Bind"},
	}
}
