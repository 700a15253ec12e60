package canid

import "fmt"

// Addr is a well-known J1939 source address assignment. Unassigned codes
// convert freely but only the published assignments carry names.
type Addr uint8

// Published address assignments.
const (
	AddrPrimaryEngineController        Addr = 0
	AddrSecondaryEngineController      Addr = 1
	AddrPrimaryTransmissionController  Addr = 3
	AddrTransmissionShiftSelector      Addr = 5
	AddrBrakes                         Addr = 11
	AddrRetarder                       Addr = 15
	AddrCruiseControl                  Addr = 17
	AddrFuelSystem                     Addr = 18
	AddrSteeringController             Addr = 19
	AddrInstrumentCluster              Addr = 23
	AddrClimateControl1                Addr = 25
	AddrCompass                        Addr = 28
	AddrBodyController                 Addr = 33
	AddrOffVehicleGateway              Addr = 37
	AddrDidVid                         Addr = 40
	AddrRetarderExhaustEngine1         Addr = 41
	AddrHeadwayController              Addr = 42
	AddrSuspension                     Addr = 47
	AddrCabController                  Addr = 49
	AddrTirePressureController         Addr = 51
	AddrLightingControlModule          Addr = 55
	AddrClimateControl2                Addr = 58
	AddrExhaustEmissionController      Addr = 61
	AddrAuxiliaryHeater                Addr = 69
	AddrChassisController              Addr = 71
	AddrCommunicationsUnit             Addr = 74
	AddrRadio                          Addr = 76
	AddrSafetyRestraintSystem          Addr = 83
	AddrAftertreatmentControlModule    Addr = 85
	AddrMultiPurposeCamera             Addr = 127
	AddrSwitchExpansionModule          Addr = 128
	AddrAuxillaryGaugeSwitchPack       Addr = 132
	AddrIteris                         Addr = 139
	AddrQualcommPeopleNetTranslatorBox Addr = 142
	AddrStandAloneRealTimeClock        Addr = 150
	AddrCenterPanel1                   Addr = 151
	AddrCenterPanel2                   Addr = 152
	AddrCenterPanel3                   Addr = 153
	AddrCenterPanel4                   Addr = 154
	AddrCenterPanel5                   Addr = 155
	AddrWabcoOnGuardRadar              Addr = 160
	AddrSecondaryInstrumentCluster     Addr = 167
	AddrOffboardDiagnostics            Addr = 172
	AddrTrailer3Bridge                 Addr = 184
	AddrTrailer2Bridge                 Addr = 192
	AddrTrailer1Bridge                 Addr = 200
	AddrSafetyDirectProcessor          Addr = 209
	AddrForwardRoadImageProcessor      Addr = 232
	AddrLeftRearDoorPod                Addr = 233
	AddrRightRearDoorPod               Addr = 234
	AddrDoorController1                Addr = 236
	AddrDoorController2                Addr = 237
	AddrTachograph                     Addr = 238
	AddrHybridSystem                   Addr = 239
	AddrAuxiliaryPowerUnit             Addr = 247
	AddrServiceTool                    Addr = 249
	AddrSourceAddressRequest0          Addr = 254
	AddrSourceAddressRequest1          Addr = 255
)

// LookupAddr resolves an address byte against the published assignment
// table. It is total: unassigned codes come back with ok false, never an
// error.
func LookupAddr(code uint8) (Addr, bool) {
	a := Addr(code)
	switch a {
	case AddrPrimaryEngineController, AddrSecondaryEngineController,
		AddrPrimaryTransmissionController, AddrTransmissionShiftSelector,
		AddrBrakes, AddrRetarder, AddrCruiseControl, AddrFuelSystem,
		AddrSteeringController, AddrInstrumentCluster, AddrClimateControl1,
		AddrCompass, AddrBodyController, AddrOffVehicleGateway, AddrDidVid,
		AddrRetarderExhaustEngine1, AddrHeadwayController, AddrSuspension,
		AddrCabController, AddrTirePressureController,
		AddrLightingControlModule, AddrClimateControl2,
		AddrExhaustEmissionController, AddrAuxiliaryHeater,
		AddrChassisController, AddrCommunicationsUnit, AddrRadio,
		AddrSafetyRestraintSystem, AddrAftertreatmentControlModule,
		AddrMultiPurposeCamera, AddrSwitchExpansionModule,
		AddrAuxillaryGaugeSwitchPack, AddrIteris,
		AddrQualcommPeopleNetTranslatorBox, AddrStandAloneRealTimeClock,
		AddrCenterPanel1, AddrCenterPanel2, AddrCenterPanel3,
		AddrCenterPanel4, AddrCenterPanel5, AddrWabcoOnGuardRadar,
		AddrSecondaryInstrumentCluster, AddrOffboardDiagnostics,
		AddrTrailer3Bridge, AddrTrailer2Bridge, AddrTrailer1Bridge,
		AddrSafetyDirectProcessor, AddrForwardRoadImageProcessor,
		AddrLeftRearDoorPod, AddrRightRearDoorPod, AddrDoorController1,
		AddrDoorController2, AddrTachograph, AddrHybridSystem,
		AddrAuxiliaryPowerUnit, AddrServiceTool, AddrSourceAddressRequest0,
		AddrSourceAddressRequest1:
		return a, true
	default:
		return a, false
	}
}

// String returns the published display name of the address, or Unknown(n)
// for codes without an assignment.
func (a Addr) String() string {
	switch a {
	case AddrPrimaryEngineController:
		return "Primary Engine Controller | (CPC, ECM)"
	case AddrSecondaryEngineController:
		return "Secondary Engine Controller | (MCM, ECM #2)"
	case AddrPrimaryTransmissionController:
		return "Primary Transmission Controller | (TCM)"
	case AddrTransmissionShiftSelector:
		return "Transmission Shift Selector | (TSS)"
	case AddrBrakes:
		return "Brakes | System Controller (ABS)"
	case AddrRetarder:
		return "Retarder"
	case AddrCruiseControl:
		return "Cruise Control | (IPM, PCC)"
	case AddrFuelSystem:
		return "Fuel System | Controller (CNG)"
	case AddrSteeringController:
		return "Steering Controller | (SAS)"
	case AddrInstrumentCluster:
		return "Instrument Guage Cluster (EGC) | (ICU, RX)"
	case AddrClimateControl1:
		return "Climate Control #1 | (FCU)"
	case AddrCompass:
		return "Compass"
	case AddrBodyController:
		return "Body Controller | (SSAM, SAM-CAB, BHM)"
	case AddrOffVehicleGateway:
		return "Off-Vehicle Gateway | (CGW)"
	case AddrDidVid:
		return "Vehicle Information Display | Driver Information Display"
	case AddrRetarderExhaustEngine1:
		return "Retarder, Exhaust, Engine #1"
	case AddrHeadwayController:
		return "Headway Controller | (RDF) | (OnGuard)"
	case AddrSuspension:
		return "Suspension | System Controller (ECAS)"
	case AddrCabController:
		return "Cab Controller | Primary (MSF, SHM, ECC)"
	case AddrTirePressureController:
		return "Tire Pressure Controller | (TPMS)"
	case AddrLightingControlModule:
		return "Lighting Control Module | (LCM)"
	case AddrClimateControl2:
		return "Climate Control #2 | Rear HVAC | (ParkSmart)"
	case AddrExhaustEmissionController:
		return "Exhaust Emission Controller | (ACM) | (DCU)"
	case AddrAuxiliaryHeater:
		return "Auxiliary Heater | (ACU)"
	case AddrChassisController:
		return "Chassis Controller | (CHM, SAM-Chassis)"
	case AddrCommunicationsUnit:
		return "Communications Unit | Cellular (CTP, VT)"
	case AddrRadio:
		return "Radio"
	case AddrSafetyRestraintSystem:
		return "Safety Restraint System | Air Bag | (SRS)"
	case AddrAftertreatmentControlModule:
		return "Aftertreatment Control Module | (ACM)"
	case AddrMultiPurposeCamera:
		return "Multi-Purpose Camera | (MPC)"
	case AddrSwitchExpansionModule:
		return "Switch Expansion Module | (SEM #1)"
	case AddrAuxillaryGaugeSwitchPack:
		return "Auxiliary Gauge Switch Pack | (AGSP3)"
	case AddrIteris:
		return "Iteris"
	case AddrQualcommPeopleNetTranslatorBox:
		return "Qualcomm - PeopleNet Translator Box"
	case AddrStandAloneRealTimeClock:
		return "Stand-Alone Real Time Clock | (SART)"
	case AddrCenterPanel1:
		return "Center Panel MUX Switch Pack #1"
	case AddrCenterPanel2:
		return "Center Panel MUX Switch Pack #2"
	case AddrCenterPanel3:
		return "Center Panel MUX Switch Pack #3"
	case AddrCenterPanel4:
		return "Center Panel MUX Switch Pack #4"
	case AddrCenterPanel5:
		return "Center Panel MUX Switch Pack #5"
	case AddrWabcoOnGuardRadar:
		return "Wabco OnGuard Radar | OnGuard Display | Collison Mitigation System"
	case AddrSecondaryInstrumentCluster:
		return "Secondary Instrument Cluster | (SIC)"
	case AddrOffboardDiagnostics:
		return "Offboard Diagnostics"
	case AddrTrailer3Bridge:
		return "Trailer #3 Bridge"
	case AddrTrailer2Bridge:
		return "Trailer #2 Bridge"
	case AddrTrailer1Bridge:
		return "Trailer #1 Bridge"
	case AddrSafetyDirectProcessor:
		return "Bendix Camera | Safety Direct Processor (SDP) Module"
	case AddrForwardRoadImageProcessor:
		return "Forward Road Image Processor | PAM Module | Lane Departure Warning (LDW) Module | (VRDU)"
	case AddrLeftRearDoorPod:
		return "Left Rear Door Pod"
	case AddrRightRearDoorPod:
		return "Right Rear Door Pod"
	case AddrDoorController1:
		return "Door Controller #1"
	case AddrDoorController2:
		return "Door Controller #2"
	case AddrTachograph:
		return "Tachograph | (TCO)"
	case AddrHybridSystem:
		return "Hybrid System"
	case AddrAuxiliaryPowerUnit:
		return "Auxiliary Power Unit | (APU)"
	case AddrServiceTool:
		return "Service Tool"
	case AddrSourceAddressRequest0:
		return "Source Address Request 0"
	case AddrSourceAddressRequest1:
		return "Source Address Request 1"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
}
